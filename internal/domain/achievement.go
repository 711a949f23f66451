package domain

import (
	"time"

	"github.com/google/uuid"
)

// Глобальный каталог ачивок, строки создаются лениво при первом анлоке
type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`

	CreatedAt time.Time `json:"-"`
}

// Уникальность пары — защита от двойного анлока
type UserAchievement struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	AchievementID uuid.UUID `gorm:"type:uuid;primaryKey" json:"achievement_id"`

	CreatedAt time.Time `json:"unlocked_at"`
}
