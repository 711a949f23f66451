package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Expense struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Amount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Category    string          `gorm:"index" json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Description string          `json:"description,omitempty"`

	PaymentMethod string    `json:"payment_method,omitempty"`
	Date          time.Time `gorm:"index" json:"date"`

	IsRecurring        bool   `gorm:"default:false" json:"is_recurring"`
	RecurringFrequency string `json:"recurring_frequency,omitempty"` // "weekly", "monthly"...

	Tags datatypes.JSONSlice[string] `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
}

// Бюджет на категорию в рамках периода ("2026-08")
type Budget struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_budgets_user_category_period" json:"user_id"`

	Category string `gorm:"uniqueIndex:idx_budgets_user_category_period" json:"category"`
	Period   string `gorm:"uniqueIndex:idx_budgets_user_category_period" json:"period"`

	Allocated decimal.Decimal `gorm:"type:decimal(12,2)" json:"allocated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
