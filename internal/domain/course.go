package domain

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          string `gorm:"primaryKey" json:"id"` // Слаг, например "budgeting-basics"
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"` // "beginner", "intermediate", "advanced"

	LessonCount    int    `json:"lesson_count"`
	EstimatedHours int    `json:"estimated_hours"`
	Icon           string `json:"icon"`

	// Курс создан генератором, а не из встроенного каталога
	IsGenerated bool `gorm:"default:false" json:"is_generated"`

	// Связь один-ко-многим: у курса много уроков
	Lessons []Lesson `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"lessons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Lesson struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID string    `gorm:"index;uniqueIndex:idx_lessons_course_order" json:"course_id"`
	Order    int       `gorm:"uniqueIndex:idx_lessons_course_order" json:"order"` // Для сортировки (1, 2, 3...)

	Title   string `json:"title"`
	Content string `gorm:"type:text" json:"content"` // Пусто, пока урок не сгенерирован

	XPReward         int `gorm:"default:50" json:"xp_reward"`
	EstimatedMinutes int `gorm:"default:10" json:"estimated_minutes"`

	CreatedAt time.Time `json:"created_at"`
}

// Отметка о пройденном уроке
type UserProgress struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	CourseID string    `gorm:"primaryKey;index" json:"course_id"`
	LessonID uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_id"`

	CreatedAt time.Time `json:"completed_at"`
}
