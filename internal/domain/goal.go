package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SavingsGoal struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`

	TargetAmount  decimal.Decimal `gorm:"type:decimal(12,2)" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"current_amount"`

	Deadline *time.Time `json:"deadline,omitempty"`

	// Ставится один раз, когда current достигает target. Дальнейшие пополнения флаг не трогают.
	Completed bool `gorm:"default:false" json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
