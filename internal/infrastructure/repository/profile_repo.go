package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewProfileRepository(db *gorm.DB, rdb *redis.Client) *ProfileRepository {
	return &ProfileRepository{db: db, rdb: rdb}
}

// GetOrCreate создает профиль при первом заходе пользователя
func (r *ProfileRepository) GetOrCreate(ctx context.Context, id uuid.UUID, email, username string) (*domain.Profile, error) {
	profile := domain.Profile{ID: id}
	err := r.db.WithContext(ctx).
		Where(domain.Profile{ID: id}).
		Attrs(domain.Profile{
			Email:    email,
			Username: username,
			AvatarID: 1,
			Level:    1,
			Currency: "USD",
		}).
		FirstOrCreate(&profile).Error
	return &profile, err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	return &profile, err
}

// Обновление произвольных полей профиля
func (r *ProfileRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// SpendCoins списывает монеты, только если их хватает.
// RowsAffected == 0 значит, что условие coins >= amount не выполнилось.
func (r *ProfileRepository) SpendCoins(ctx context.Context, id uuid.UUID, amount int) error {
	res := r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("id = ? AND coins >= ?", id, amount).
		Update("coins", gorm.Expr("coins - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientCoins
	}
	return nil
}

// AddCoins возвращает монеты (компенсация неудавшейся выдачи товара)
func (r *ProfileRepository) AddCoins(ctx context.Context, id uuid.UUID, amount int) error {
	return r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("id = ?", id).
		Update("coins", gorm.Expr("coins + ?", amount)).Error
}

// AddUnlockedAvatar выдает аватарку. Повторная выдача — не ошибка, created == false.
func (r *ProfileRepository) AddUnlockedAvatar(ctx context.Context, userID uuid.UUID, avatarID int) (bool, error) {
	item := domain.UnlockedAvatar{UserID: userID, AvatarID: avatarID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
	return res.RowsAffected > 0, res.Error
}

func (r *ProfileRepository) GetUnlockedAvatarIDs(ctx context.Context, userID uuid.UUID) ([]int, error) {
	var rows []domain.UnlockedAvatar
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("avatar_id asc").
		Find(&rows).Error

	var ids []int
	for _, row := range rows {
		ids = append(ids, row.AvatarID)
	}
	return ids, err
}

// MarkLessonCompleted пишет отметку о прохождении.
// Уникальность тройки (user, course, lesson) отсекает дубликаты:
// created == true только при первом прохождении.
func (r *ProfileRepository) MarkLessonCompleted(ctx context.Context, item *domain.UserProgress) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(item)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Подсчитать количество пройденных уроков для курса
func (r *ProfileRepository) CountCompletedLessons(ctx context.Context, userID uuid.UUID, courseID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.UserProgress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count, err
}

func (r *ProfileRepository) CountCompletedLessonsTotal(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.UserProgress{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Получить все ID пройденных уроков курса
func (r *ProfileRepository) GetCompletedLessonIDs(ctx context.Context, userID uuid.UUID, courseID string) ([]uuid.UUID, error) {
	var rows []domain.UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Find(&rows).Error

	var ids []uuid.UUID
	for _, row := range rows {
		ids = append(ids, row.LessonID)
	}
	return ids, err
}

// === ЛИДЕРБОРД ===

// Топ-N по опыту. Кешируем на минуту: таблица маленькая, но дергается часто.
func (r *ProfileRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.Profile, error) {
	key := fmt.Sprintf("leaderboard:top:%d", limit)

	// 1. Читаем из кеша
	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var cached []domain.Profile
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached, nil
		}
	}

	// 2. Читаем из БД
	var profiles []domain.Profile
	err = r.db.WithContext(ctx).
		Order("xp desc").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	// 3. Пишем в кеш
	if data, err := json.Marshal(profiles); err == nil {
		r.rdb.Set(ctx, key, data, 60*time.Second)
	}

	return profiles, nil
}

// Место в рейтинге считаем вживую, без кеша
func (r *ProfileRepository) GetUserRank(ctx context.Context, id uuid.UUID) (int, error) {
	profile, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	var higher int64
	err = r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("xp > ?", profile.XP).
		Count(&higher).Error
	return int(higher) + 1, err
}
