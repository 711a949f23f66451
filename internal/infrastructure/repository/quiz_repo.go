package repository

import (
	"context"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// RandomQuestions отдает случайную выборку из банка вопросов
func (r *QuizRepository) RandomQuestions(ctx context.Context, topic, difficulty string, limit int) ([]domain.QuizQuestion, error) {
	query := r.db.WithContext(ctx).Model(&domain.QuizQuestion{})
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []domain.QuizQuestion
	// RANDOM() работает и в Postgres, и в SQLite
	err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *QuizRepository) ListAttempts(ctx context.Context, userID uuid.UUID) ([]domain.QuizAttempt, error) {
	var attempts []domain.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&attempts).Error
	return attempts, err
}

func (r *QuizRepository) CountAttempts(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.QuizAttempt{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
