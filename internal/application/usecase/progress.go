package usecase

import (
	"context"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"

	"github.com/google/uuid"
)

// Сколько опыта дают события
const (
	XPDailyLogin     = 20
	XPExpenseLogged  = 10
	XPQuizPerCorrect = 10
	XPGoalAdd        = 15
	XPGoalComplete   = 50
)

// Опыт конвертируется в уровень всегда по одной формуле
func LevelForXP(xp int) int {
	return xp/1000 + 1
}

type ProgressService struct {
	profiles *repository.ProfileRepository
	log      *logger.Logger
}

func NewProgressService(profiles *repository.ProfileRepository, log *logger.Logger) *ProgressService {
	return &ProgressService{profiles: profiles, log: log}
}

// AwardXP начисляет опыт и пересчитывает уровень.
// Монеты (1 монета за каждые 10 XP) добавляются только там, где событие их дает —
// это решает вызывающий. Запись идет одним Updates: читаем, считаем, пишем.
func (s *ProgressService) AwardXP(ctx context.Context, userID uuid.UUID, amount int, withCoins bool) (*domain.Profile, error) {
	if amount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	newXP := profile.XP + amount
	newLevel := LevelForXP(newXP)

	updates := map[string]interface{}{
		"xp":    newXP,
		"level": newLevel,
	}
	if withCoins {
		updates["coins"] = profile.Coins + amount/10
	}

	if err := s.profiles.UpdateFields(ctx, userID, updates); err != nil {
		return nil, err
	}

	profile.XP = newXP
	profile.Level = newLevel
	if withCoins {
		profile.Coins += amount / 10
	}
	return profile, nil
}

type LoginResult struct {
	Streak    int  `json:"streak"`
	Milestone bool `json:"milestone"`
	XPAwarded int  `json:"xp_awarded"`
	Awarded   bool `json:"awarded"`
}

// DailyLogin двигает стрик раз в календарные сутки (UTC):
// первый заход — 1, на следующий день — +1, после пропуска — снова 1.
// Повторный заход в тот же день ничего не меняет и не начисляется.
func (s *ProgressService) DailyLogin(ctx context.Context, userID uuid.UUID) (*LoginResult, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newStreak := 1
	if !profile.LastLoginAt.IsZero() {
		switch diff := daysBetween(profile.LastLoginAt, now); {
		case diff == 0:
			return &LoginResult{Streak: profile.Streak, Awarded: false}, nil
		case diff == 1:
			newStreak = profile.Streak + 1
		}
	}

	newXP := profile.XP + XPDailyLogin
	updates := map[string]interface{}{
		"streak":        newStreak,
		"last_login_at": now,
		"xp":            newXP,
		"level":         LevelForXP(newXP),
		"coins":         profile.Coins + XPDailyLogin/10,
	}
	if err := s.profiles.UpdateFields(ctx, userID, updates); err != nil {
		return nil, err
	}

	return &LoginResult{
		Streak: newStreak,
		// Каждая седьмая отметка подряд — повод для конфетти на фронте
		Milestone: newStreak%7 == 0,
		XPAwarded: XPDailyLogin,
		Awarded:   true,
	}, nil
}

// daysBetween считает целые календарные сутки между датами (время суток отбрасываем).
// Обе даты приводим к UTC, иначе драйвер может вернуть время в другой зоне.
func daysBetween(last, now time.Time) int {
	last, now = last.UTC(), now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(lastDay).Hours() / 24)
}
