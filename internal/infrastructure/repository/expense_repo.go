package repository

import (
	"context"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// ListByUser возвращает траты, сначала свежие.
// month в формате "2006-01" сужает выборку до календарного месяца.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID, month string) ([]domain.Expense, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if month != "" {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, err
		}
		end := start.AddDate(0, 1, 0)
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var expenses []domain.Expense
	err := query.Order("date desc").Find(&expenses).Error
	return expenses, err
}

// Delete удаляет только свою трату. Чужой или несуществующий id — not found.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", expenseID, userID).
		Delete(&domain.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ExpenseRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Expense{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
