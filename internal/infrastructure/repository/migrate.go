package repository

import (
	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Profile{},
		&domain.UnlockedAvatar{},
		&domain.Expense{},
		&domain.Budget{},
		&domain.SavingsGoal{},
		&domain.Course{},
		&domain.Lesson{},
		&domain.UserProgress{},
		&domain.QuizQuestion{},
		&domain.QuizAttempt{},
		&domain.Achievement{},
		&domain.UserAchievement{},
	)
}
