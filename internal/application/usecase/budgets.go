package usecase

import (
	"context"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetService struct {
	budgets   *repository.BudgetRepository
	analytics *AnalyticsService
}

func NewBudgetService(budgets *repository.BudgetRepository, analytics *AnalyticsService) *BudgetService {
	return &BudgetService{budgets: budgets, analytics: analytics}
}

// Set создает или перезаписывает лимит категории на период.
// Пара (категория, период) уникальна, поэтому повторный вызов — это upsert.
func (s *BudgetService) Set(ctx context.Context, userID uuid.UUID, category, period string, allocated decimal.Decimal) (*domain.Budget, error) {
	if allocated.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if period == "" {
		period = time.Now().UTC().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", period); err != nil {
		return nil, err
	}

	budget := &domain.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Period:    period,
		Allocated: allocated,
	}
	if err := s.budgets.Upsert(ctx, budget); err != nil {
		return nil, err
	}
	// При конфликте строка сохраняет свой старый ID, поэтому перечитываем
	return s.budgets.Get(ctx, userID, category, period)
}

// List отдает бюджеты периода вместе с процентом использования
func (s *BudgetService) List(ctx context.Context, userID uuid.UUID, period string) ([]BudgetStatus, error) {
	if period == "" {
		period = time.Now().UTC().Format("2006-01")
	}
	return s.analytics.BudgetStatuses(ctx, userID, period)
}
