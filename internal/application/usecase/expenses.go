package usecase

import (
	"context"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CreateExpenseInput struct {
	Amount             decimal.Decimal
	Category           string
	Subcategory        string
	Description        string
	PaymentMethod      string
	Date               time.Time
	IsRecurring        bool
	RecurringFrequency string
	Tags               []string
}

type ExpenseService struct {
	expenses     *repository.ExpenseRepository
	progress     *ProgressService
	achievements *AchievementService
	log          *logger.Logger
}

func NewExpenseService(
	expenses *repository.ExpenseRepository,
	progress *ProgressService,
	achievements *AchievementService,
	log *logger.Logger,
) *ExpenseService {
	return &ExpenseService{
		expenses:     expenses,
		progress:     progress,
		achievements: achievements,
		log:          log,
	}
}

// Create сохраняет трату и начисляет опыт за ведение учета.
// Начисления не должны ронять основную запись: ошибки там только логируем.
func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, input CreateExpenseInput) (*domain.Expense, []domain.Achievement, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, domain.ErrInvalidAmount
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := &domain.Expense{
		ID:                 uuid.New(),
		UserID:             userID,
		Amount:             input.Amount,
		Category:           input.Category,
		Subcategory:        input.Subcategory,
		Description:        input.Description,
		PaymentMethod:      input.PaymentMethod,
		Date:               date,
		IsRecurring:        input.IsRecurring,
		RecurringFrequency: input.RecurringFrequency,
		Tags:               datatypes.NewJSONSlice(input.Tags),
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, nil, err
	}

	// Опыт за трату идет без монет
	if _, err := s.progress.AwardXP(ctx, userID, XPExpenseLogged, false); err != nil {
		s.log.Error("failed to award expense xp", "userId", userID, "error", err)
	}
	unlocked, err := s.achievements.Check(ctx, userID, MetricExpenseCount)
	if err != nil {
		s.log.Error("failed to check expense achievements", "userId", userID, "error", err)
	}

	return expense, unlocked, nil
}

// List возвращает траты пользователя, опционально за один месяц (YYYY-MM)
func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID, month string) ([]domain.Expense, error) {
	return s.expenses.ListByUser(ctx, userID, month)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	return s.expenses.Delete(ctx, userID, expenseID)
}
