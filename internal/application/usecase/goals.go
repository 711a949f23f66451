package usecase

import (
	"context"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoalService struct {
	goals    *repository.GoalRepository
	progress *ProgressService
	log      *logger.Logger
}

func NewGoalService(goals *repository.GoalRepository, progress *ProgressService, log *logger.Logger) *GoalService {
	return &GoalService{goals: goals, progress: progress, log: log}
}

func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, name, icon string, target decimal.Decimal, deadline *time.Time) (*domain.SavingsGoal, error) {
	if target.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	goal := &domain.SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Icon:          icon,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]domain.SavingsGoal, error) {
	return s.goals.ListByUser(ctx, userID)
}

type GoalAddResult struct {
	Goal         *domain.SavingsGoal `json:"goal"`
	JustFinished bool                `json:"just_finished"`
	XPAwarded    int                 `json:"xp_awarded"`
}

// Add пополняет цель. Достижение цели фиксируется ровно один раз —
// в момент пополнения, которое перевалило через target. Флаг completed
// назад не снимается, даже если target потом поднимут.
func (s *GoalService) Add(ctx context.Context, userID, goalID uuid.UUID, amount decimal.Decimal) (*GoalAddResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	goal, err := s.goals.GetByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	newCurrent := goal.CurrentAmount.Add(amount)
	updates := map[string]interface{}{"current_amount": newCurrent}

	justFinished := false
	if !goal.Completed && newCurrent.GreaterThanOrEqual(goal.TargetAmount) {
		updates["completed"] = true
		justFinished = true
	}

	if err := s.goals.UpdateFields(ctx, goalID, updates); err != nil {
		return nil, err
	}

	// За пополнение — опыт без монет, за закрытие цели — с монетами
	xpAwarded := XPGoalAdd
	if _, err := s.progress.AwardXP(ctx, userID, XPGoalAdd, false); err != nil {
		s.log.Error("failed to award goal xp", "userId", userID, "error", err)
	}
	if justFinished {
		xpAwarded += XPGoalComplete
		if _, err := s.progress.AwardXP(ctx, userID, XPGoalComplete, true); err != nil {
			s.log.Error("failed to award goal completion xp", "userId", userID, "error", err)
		}
	}

	goal.CurrentAmount = newCurrent
	if justFinished {
		goal.Completed = true
	}
	return &GoalAddResult{Goal: goal, JustFinished: justFinished, XPAwarded: xpAwarded}, nil
}
