package usecase

import (
	"context"
	"fmt"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"

	"github.com/google/uuid"
)

// Метрики, по которым выдаются ачивки
const (
	MetricExpenseCount = "expense_count"
	MetricQuizCount    = "quiz_count"
	MetricLessonCount  = "lesson_count"
	MetricLevel        = "level"
	MetricStreak       = "streak"
)

type achievementRule struct {
	metric      string
	threshold   int64
	name        string
	description string
	icon        string
}

// Пороговые правила. Имя уникально, повторная выдача гасится на уровне БД.
var achievementRules = []achievementRule{
	{MetricExpenseCount, 1, "First Expense", "Log your first expense", "🎯"},
	{MetricExpenseCount, 25, "Expense Tracker", "Log 25 expenses", "📒"},
	{MetricExpenseCount, 100, "Money Hawk", "Log 100 expenses", "🦅"},
	{MetricQuizCount, 1, "Quiz Rookie", "Finish your first quiz", "🧠"},
	{MetricQuizCount, 10, "Quiz Master", "Finish 10 quizzes", "🏆"},
	{MetricLessonCount, 1, "First Lesson", "Complete your first lesson", "📖"},
	{MetricLessonCount, 10, "Bookworm", "Complete 10 lessons", "🐛"},
	{MetricLevel, 5, "Level 5", "Reach level 5", "⭐"},
	{MetricLevel, 10, "Level 10", "Reach level 10", "🌟"},
	{MetricStreak, 7, "Week Streak", "Log in 7 days in a row", "🔥"},
	{MetricStreak, 30, "Iron Habit", "Log in 30 days in a row", "💪"},
}

type AchievementService struct {
	achievements *repository.AchievementRepository
	profiles     *repository.ProfileRepository
	expenses     *repository.ExpenseRepository
	quizzes      *repository.QuizRepository
}

func NewAchievementService(
	achievements *repository.AchievementRepository,
	profiles *repository.ProfileRepository,
	expenses *repository.ExpenseRepository,
	quizzes *repository.QuizRepository,
) *AchievementService {
	return &AchievementService{
		achievements: achievements,
		profiles:     profiles,
		expenses:     expenses,
		quizzes:      quizzes,
	}
}

// Check прогоняет правила по перечисленным метрикам и возвращает только
// свежеразблокированные ачивки. Уже выданные молча пропускаются.
func (s *AchievementService) Check(ctx context.Context, userID uuid.UUID, metrics ...string) ([]domain.Achievement, error) {
	var unlocked []domain.Achievement
	for _, metric := range metrics {
		value, err := s.metricValue(ctx, userID, metric)
		if err != nil {
			return unlocked, err
		}
		for _, rule := range achievementRules {
			if rule.metric != metric || value < rule.threshold {
				continue
			}
			achievement, err := s.achievements.EnsureByName(ctx, rule.name, rule.description, rule.icon)
			if err != nil {
				return unlocked, err
			}
			created, err := s.achievements.Unlock(ctx, userID, achievement.ID)
			if err != nil {
				return unlocked, err
			}
			if created {
				unlocked = append(unlocked, *achievement)
			}
		}
	}
	return unlocked, nil
}

func (s *AchievementService) List(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	return s.achievements.ListByUser(ctx, userID)
}

func (s *AchievementService) metricValue(ctx context.Context, userID uuid.UUID, metric string) (int64, error) {
	switch metric {
	case MetricExpenseCount:
		return s.expenses.CountByUser(ctx, userID)
	case MetricQuizCount:
		return s.quizzes.CountAttempts(ctx, userID)
	case MetricLessonCount:
		return s.profiles.CountCompletedLessonsTotal(ctx, userID)
	case MetricLevel:
		profile, err := s.profiles.GetByID(ctx, userID)
		if err != nil {
			return 0, err
		}
		return int64(profile.Level), nil
	case MetricStreak:
		profile, err := s.profiles.GetByID(ctx, userID)
		if err != nil {
			return 0, err
		}
		return int64(profile.Streak), nil
	default:
		return 0, fmt.Errorf("unknown achievement metric: %s", metric)
	}
}
