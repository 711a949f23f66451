package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Profile struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Username string    `json:"username"`
	AvatarID int       `gorm:"default:1" json:"avatar_id"`

	XP    int `gorm:"default:0" json:"xp"`
	Level int `gorm:"default:1" json:"level"` // Всегда XP/1000 + 1, пересчитывается при каждой записи XP
	Coins int `gorm:"default:0" json:"coins"`

	Streak      int       `gorm:"default:0" json:"streak"`
	LastLoginAt time.Time `json:"last_login_at"`

	MonthlyBudget decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"monthly_budget"`
	Currency      string          `gorm:"default:'USD'" json:"currency"`

	// Связь с открытыми аватарками
	UnlockedAvatars []UnlockedAvatar `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Таблица для хранения купленных аватарок
type UnlockedAvatar struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	AvatarID int       `gorm:"primaryKey" json:"avatar_id"` // ID пресета (1-20)
}
