package repository

import (
	"context"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Upsert: на пару (категория, период) у пользователя ровно одна строка,
// повторная запись просто меняет сумму.
func (r *BudgetRepository) Upsert(ctx context.Context, budget *domain.Budget) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "period"}},
			DoUpdates: clause.AssignmentColumns([]string{"allocated", "updated_at"}),
		}).
		Create(budget).Error
}

func (r *BudgetRepository) ListByUserPeriod(ctx context.Context, userID uuid.UUID, period string) ([]domain.Budget, error) {
	var budgets []domain.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND period = ?", userID, period).
		Order("category asc").
		Find(&budgets).Error
	return budgets, err
}

func (r *BudgetRepository) Get(ctx context.Context, userID uuid.UUID, category, period string) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND period = ?", userID, category, period).
		First(&budget).Error
	if err != nil {
		return nil, err
	}
	return &budget, nil
}
