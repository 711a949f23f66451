package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

type ProfileService struct {
	profiles *repository.ProfileRepository
	log      *logger.Logger
}

func NewProfileService(profiles *repository.ProfileRepository, log *logger.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, log: log}
}

type ProfileView struct {
	Profile           *domain.Profile `json:"profile"`
	Rank              int             `json:"rank"`
	UnlockedAvatars   []int           `json:"unlocked_avatars"`
	CurrentStreak     int             `json:"current_streak"`
	StreakActiveToday bool            `json:"streak_active_today"`
}

// Get возвращает профиль, при первом обращении создавая его из клеймов токена
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID, email, username string) (*ProfileView, error) {
	if username == "" && email != "" {
		// Имя по умолчанию — локальная часть почты
		username = strings.Split(email, "@")[0]
	}

	profile, err := s.profiles.GetOrCreate(ctx, userID, email, username)
	if err != nil {
		return nil, err
	}

	rank, err := s.profiles.GetUserRank(ctx, userID)
	if err != nil {
		// Без ранга профиль все равно отдаем
		s.log.Warn("failed to compute rank", "userId", userID, "error", err)
		rank = 0
	}

	purchased, err := s.profiles.GetUnlockedAvatarIDs(ctx, userID)
	if err != nil {
		s.log.Warn("failed to load unlocked avatars", "userId", userID, "error", err)
	}
	unlocked := make([]int, 0, FreeAvatarMax+len(purchased))
	for id := 1; id <= FreeAvatarMax; id++ {
		unlocked = append(unlocked, id)
	}
	for _, id := range purchased {
		if id > FreeAvatarMax {
			unlocked = append(unlocked, id)
		}
	}

	// Стрик показываем честно: при пропуске больше суток он уже мертв,
	// даже если в БД еще лежит старое значение
	currentStreak := profile.Streak
	activeToday := false
	if profile.LastLoginAt.IsZero() {
		currentStreak = 0
	} else {
		switch diff := daysBetween(profile.LastLoginAt, time.Now().UTC()); {
		case diff == 0:
			activeToday = true
		case diff > 1:
			currentStreak = 0
		}
	}

	return &ProfileView{
		Profile:           profile,
		Rank:              rank,
		UnlockedAvatars:   unlocked,
		CurrentStreak:     currentStreak,
		StreakActiveToday: activeToday,
	}, nil
}

type UpdateProfileInput struct {
	Username      *string
	AvatarID      *int
	MonthlyBudget *decimal.Decimal
	Currency      *string
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.Profile, error) {
	updates := map[string]interface{}{}

	if input.Username != nil && *input.Username != "" {
		updates["username"] = *input.Username
	}
	if input.AvatarID != nil {
		id := *input.AvatarID
		if id < 1 || id > MaxAvatarID {
			return nil, domain.ErrInvalidAvatarID
		}
		if id > FreeAvatarMax {
			purchased, err := s.profiles.GetUnlockedAvatarIDs(ctx, userID)
			if err != nil {
				return nil, err
			}
			owned := false
			for _, p := range purchased {
				if p == id {
					owned = true
					break
				}
			}
			if !owned {
				return nil, domain.ErrAvatarNotOwned
			}
		}
		updates["avatar_id"] = id
	}
	if input.MonthlyBudget != nil {
		if input.MonthlyBudget.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		updates["monthly_budget"] = *input.MonthlyBudget
	}
	if input.Currency != nil && *input.Currency != "" {
		updates["currency"] = strings.ToUpper(*input.Currency)
	}

	if len(updates) == 0 {
		return s.profiles.GetByID(ctx, userID)
	}
	if err := s.profiles.UpdateFields(ctx, userID, updates); err != nil {
		return nil, err
	}
	return s.profiles.GetByID(ctx, userID)
}

type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	AvatarID int       `json:"avatar_id"`
	XP       int       `json:"xp"`
	Level    int       `json:"level"`
	IsMe     bool      `json:"is_me"`
}

type LeaderboardView struct {
	Entries []LeaderboardEntry `json:"entries"`
	MyRank  int                `json:"my_rank"`
}

// Leaderboard отдает топ по опыту. Сам топ идет из кеша,
// а свой ранг считаем живым запросом, чтобы не врать пользователю.
func (s *ProfileService) Leaderboard(ctx context.Context, userID uuid.UUID, limit int) (*LeaderboardView, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	top, err := s.profiles.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(top))
	for i, p := range top {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   p.ID,
			Username: p.Username,
			AvatarID: p.AvatarID,
			XP:       p.XP,
			Level:    p.Level,
			IsMe:     p.ID == userID,
		})
	}

	myRank, err := s.profiles.GetUserRank(ctx, userID)
	if err != nil {
		s.log.Warn("failed to compute rank", "userId", userID, "error", err)
		myRank = 0
	}

	return &LeaderboardView{Entries: entries, MyRank: myRank}, nil
}
