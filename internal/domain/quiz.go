package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizQuestion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Topic      string    `gorm:"index" json:"topic"`
	Difficulty string    `gorm:"index" json:"difficulty"`

	Question      string                      `json:"question"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer int                         `json:"correct_answer"` // Индекс в options
	Explanation   string                      `json:"explanation"`

	CreatedAt time.Time `json:"-"`
}

// Результат пройденной викторины, только append
type QuizAttempt struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Topic          string `json:"topic"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	XPEarned       int    `json:"xp_earned"`

	CreatedAt time.Time `json:"created_at"`
}
