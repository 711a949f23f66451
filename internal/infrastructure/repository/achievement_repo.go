package repository

import (
	"context"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// EnsureByName создает строку каталога при первом обращении.
// Имя уникально, так что каталог не раздувается.
func (r *AchievementRepository) EnsureByName(ctx context.Context, name, description, icon string) (*domain.Achievement, error) {
	achievement := domain.Achievement{}
	err := r.db.WithContext(ctx).
		Where(domain.Achievement{Name: name}).
		Attrs(domain.Achievement{
			ID:          uuid.New(),
			Description: description,
			Icon:        icon,
		}).
		FirstOrCreate(&achievement).Error
	return &achievement, err
}

// Unlock выдает ачивку. Уникальность пары (user, achievement) — страховка
// от двойной выдачи: при повторе created == false, ошибки нет.
func (r *AchievementRepository) Unlock(ctx context.Context, userID, achievementID uuid.UUID) (bool, error) {
	item := domain.UserAchievement{UserID: userID, AchievementID: achievementID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AchievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	var achievements []domain.Achievement
	err := r.db.WithContext(ctx).
		Joins("JOIN user_achievements ON user_achievements.achievement_id = achievements.id").
		Where("user_achievements.user_id = ?", userID).
		Order("user_achievements.created_at desc").
		Find(&achievements).Error
	return achievements, err
}
