package usecase

import (
	"context"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"
	"github.com/vamsipakalapati4107/finlit4/internal/infrastructure/repository"
	"github.com/vamsipakalapati4107/finlit4/internal/logger"

	"github.com/google/uuid"
)

// Аватары — пресеты с фиксированной ценой. Первые пять открыты всем.
const (
	AvatarPrice   = 250
	FreeAvatarMax = 5
	MaxAvatarID   = 20
)

type AvatarItem struct {
	ID    int  `json:"id"`
	Price int  `json:"price"`
	Owned bool `json:"owned"`
}

type ShopService struct {
	profiles *repository.ProfileRepository
	log      *logger.Logger
}

func NewShopService(profiles *repository.ProfileRepository, log *logger.Logger) *ShopService {
	return &ShopService{profiles: profiles, log: log}
}

func (s *ShopService) ListAvatars(ctx context.Context, userID uuid.UUID) ([]AvatarItem, error) {
	purchased, err := s.profiles.GetUnlockedAvatarIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[int]bool, len(purchased))
	for _, id := range purchased {
		owned[id] = true
	}

	items := make([]AvatarItem, 0, MaxAvatarID)
	for id := 1; id <= MaxAvatarID; id++ {
		price := AvatarPrice
		if id <= FreeAvatarMax {
			price = 0
		}
		items = append(items, AvatarItem{
			ID:    id,
			Price: price,
			Owned: id <= FreeAvatarMax || owned[id],
		})
	}
	return items, nil
}

// Purchase списывает монеты и открывает аватар. Если открыть не вышло
// (ошибка или параллельная покупка успела раньше), монеты возвращаем.
func (s *ShopService) Purchase(ctx context.Context, userID uuid.UUID, avatarID int) (*domain.Profile, error) {
	if avatarID < 1 || avatarID > MaxAvatarID {
		return nil, domain.ErrInvalidAvatarID
	}
	if avatarID <= FreeAvatarMax {
		return nil, domain.ErrAlreadyOwned
	}

	purchased, err := s.profiles.GetUnlockedAvatarIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range purchased {
		if id == avatarID {
			return nil, domain.ErrAlreadyOwned
		}
	}

	// 1. Списываем цену (атомарно, с проверкой баланса)
	if err := s.profiles.SpendCoins(ctx, userID, AvatarPrice); err != nil {
		return nil, err
	}

	// 2. Открываем аватар
	created, err := s.profiles.AddUnlockedAvatar(ctx, userID, avatarID)
	if err != nil || !created {
		// 3. Компенсация: покупка не состоялась, монеты назад
		if rerr := s.profiles.AddCoins(ctx, userID, AvatarPrice); rerr != nil {
			s.log.Error("failed to refund avatar purchase", "userId", userID, "avatarId", avatarID, "error", rerr)
		}
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrAlreadyOwned
	}

	return s.profiles.GetByID(ctx, userID)
}
