package repository

import (
	"context"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.SavingsGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavingsGoal, error) {
	var goals []domain.SavingsGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&goals).Error
	return goals, err
}

// Чужая цель не видна — фильтр по владельцу обязателен
func (r *GoalRepository) GetByID(ctx context.Context, userID, goalID uuid.UUID) (*domain.SavingsGoal, error) {
	var goal domain.SavingsGoal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	return &goal, err
}

func (r *GoalRepository) UpdateFields(ctx context.Context, goalID uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.SavingsGoal{}).
		Where("id = ?", goalID).
		Updates(updates).Error
}
