package usecase

import (
	"context"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"

	"github.com/google/uuid"
)

const defaultQuizSize = 5

type QuizService struct {
	quizzes      *repository.QuizRepository
	progress     *ProgressService
	achievements *AchievementService
	log          *logger.Logger
}

func NewQuizService(
	quizzes *repository.QuizRepository,
	progress *ProgressService,
	achievements *AchievementService,
	log *logger.Logger,
) *QuizService {
	return &QuizService{
		quizzes:      quizzes,
		progress:     progress,
		achievements: achievements,
		log:          log,
	}
}

// Questions отдает случайную выборку вопросов, фильтры опциональны
func (s *QuizService) Questions(ctx context.Context, topic, difficulty string, limit int) ([]domain.QuizQuestion, error) {
	if limit <= 0 {
		limit = defaultQuizSize
	}
	return s.quizzes.RandomQuestions(ctx, topic, difficulty, limit)
}

type QuizSubmitResult struct {
	Attempt  *domain.QuizAttempt  `json:"attempt"`
	Unlocked []domain.Achievement `json:"unlocked,omitempty"`
}

// SubmitAttempt записывает результат и начисляет по 10 XP за верный ответ.
// Сам результат сохраняется даже если начисления отвалились.
func (s *QuizService) SubmitAttempt(ctx context.Context, userID uuid.UUID, topic string, score, total int) (*QuizSubmitResult, error) {
	if total <= 0 || score < 0 || score > total {
		return nil, domain.ErrInvalidScore
	}

	attempt := &domain.QuizAttempt{
		ID:             uuid.New(),
		UserID:         userID,
		Topic:          topic,
		Score:          score,
		TotalQuestions: total,
		XPEarned:       XPQuizPerCorrect * score,
	}
	if err := s.quizzes.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	if _, err := s.progress.AwardXP(ctx, userID, attempt.XPEarned, true); err != nil {
		s.log.Error("failed to award quiz xp", "userId", userID, "error", err)
	}
	unlocked, err := s.achievements.Check(ctx, userID, MetricQuizCount, MetricLevel)
	if err != nil {
		s.log.Error("failed to check quiz achievements", "userId", userID, "error", err)
	}

	return &QuizSubmitResult{Attempt: attempt, Unlocked: unlocked}, nil
}

func (s *QuizService) History(ctx context.Context, userID uuid.UUID) ([]domain.QuizAttempt, error) {
	return s.quizzes.ListAttempts(ctx, userID)
}
