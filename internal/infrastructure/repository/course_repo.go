package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const courseListCacheKey = "courses:list"

type CourseRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCourseRepository(db *gorm.DB, rdb *redis.Client) *CourseRepository {
	return &CourseRepository{db: db, rdb: rdb}
}

// === КЕШИРУЕМ СПИСОК КУРСОВ ===
func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	// 1. Читаем из кеша
	val, err := r.rdb.Get(ctx, courseListCacheKey).Result()
	if err == nil {
		var cached []domain.Course
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached, nil
		}
	}

	// 2. Читаем из БД (без уроков, список легкий)
	var courses []domain.Course
	err = r.db.WithContext(ctx).Order("created_at asc").Find(&courses).Error
	if err != nil {
		return nil, err
	}

	// 3. Пишем в кеш. Каталог меняется только при генерации нового курса,
	// там мы ключ сбрасываем, так что TTL щедрый.
	if data, err := json.Marshal(courses); err == nil {
		r.rdb.Set(ctx, courseListCacheKey, data, 5*time.Minute)
	}

	return courses, nil
}

func (r *CourseRepository) Get(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Курс с уроками в порядке прохождения. Не кешируем: после генерации
// контента урока деталь должна отдаваться свежей.
func (r *CourseRepository) GetWithLessons(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" asc")
		}).
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) CountLessons(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *CourseRepository) GetLesson(ctx context.Context, courseID string, lessonID uuid.UUID) (*domain.Lesson, error) {
	var lesson domain.Lesson
	err := r.db.WithContext(ctx).
		Where("id = ? AND course_id = ?", lessonID, courseID).
		First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// CreateWithLessons сохраняет курс вместе с уроками (одной транзакцией через ассоциации)
func (r *CourseRepository) CreateWithLessons(ctx context.Context, course *domain.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return err
	}
	// Новый курс должен появиться в списке сразу
	r.rdb.Del(ctx, courseListCacheKey)
	return nil
}

// FillLessonContent записывает контент, только если его еще нет.
// filled == false значит, что параллельный генератор успел раньше —
// вызывающий перечитывает урок и отдает сохраненный вариант.
func (r *CourseRepository) FillLessonContent(ctx context.Context, lessonID uuid.UUID, content string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Where("id = ? AND (content IS NULL OR content = '')", lessonID).
		Update("content", content)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
