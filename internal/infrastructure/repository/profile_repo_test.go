package repository

import (
	"context"
	"testing"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t), newTestRedis(t))
	ctx := context.Background()
	id := uuid.New()

	first, err := repo.GetOrCreate(ctx, id, "alice@example.com", "alice")
	require.NoError(t, err)
	require.Equal(t, id, first.ID)
	require.Equal(t, 1, first.Level)
	require.Equal(t, "USD", first.Currency)

	// Second call must return the same row, not create a duplicate
	require.NoError(t, repo.UpdateFields(ctx, id, map[string]interface{}{"xp": 300}))
	second, err := repo.GetOrCreate(ctx, id, "other@example.com", "other")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", second.Email)
	require.Equal(t, 300, second.XP)
}

func TestSpendCoinsGuard(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t), newTestRedis(t))
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetOrCreate(ctx, id, "bob@example.com", "bob")
	require.NoError(t, err)
	require.NoError(t, repo.UpdateFields(ctx, id, map[string]interface{}{"coins": 100}))

	// Not enough coins: balance must stay untouched
	err = repo.SpendCoins(ctx, id, 250)
	require.ErrorIs(t, err, domain.ErrInsufficientCoins)
	p, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 100, p.Coins)

	// Exact balance is spendable
	require.NoError(t, repo.SpendCoins(ctx, id, 100))
	p, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 0, p.Coins)

	// Refund path
	require.NoError(t, repo.AddCoins(ctx, id, 40))
	p, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 40, p.Coins)
}

func TestAddUnlockedAvatarDuplicate(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t), newTestRedis(t))
	ctx := context.Background()
	id := uuid.New()
	_, err := repo.GetOrCreate(ctx, id, "carol@example.com", "carol")
	require.NoError(t, err)

	created, err := repo.AddUnlockedAvatar(ctx, id, 7)
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.AddUnlockedAvatar(ctx, id, 7)
	require.NoError(t, err)
	require.False(t, created)

	ids, err := repo.GetUnlockedAvatarIDs(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []int{7}, ids)
}

func TestMarkLessonCompletedOnlyOnce(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t), newTestRedis(t))
	ctx := context.Background()
	userID := uuid.New()
	lessonID := uuid.New()

	item := &domain.UserProgress{UserID: userID, CourseID: "budgeting-basics", LessonID: lessonID}
	created, err := repo.MarkLessonCompleted(ctx, item)
	require.NoError(t, err)
	require.True(t, created)

	again := &domain.UserProgress{UserID: userID, CourseID: "budgeting-basics", LessonID: lessonID}
	created, err = repo.MarkLessonCompleted(ctx, again)
	require.NoError(t, err)
	require.False(t, created)

	count, err := repo.CountCompletedLessons(ctx, userID, "budgeting-basics")
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestLeaderboardAndRank(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t), newTestRedis(t))
	ctx := context.Background()

	ids := make([]uuid.UUID, 3)
	for i, xp := range []int{500, 2500, 1200} {
		ids[i] = uuid.New()
		_, err := repo.GetOrCreate(ctx, ids[i], uuid.NewString()+"@example.com", "user")
		require.NoError(t, err)
		require.NoError(t, repo.UpdateFields(ctx, ids[i], map[string]interface{}{"xp": xp}))
	}

	top, err := repo.GetLeaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, 2500, top[0].XP)
	require.Equal(t, 1200, top[1].XP)

	// Second read comes from cache: bump the DB and expect the stale top
	require.NoError(t, repo.UpdateFields(ctx, ids[0], map[string]interface{}{"xp": 9000}))
	cached, err := repo.GetLeaderboard(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2500, cached[0].XP)

	// Rank is computed live
	rank, err := repo.GetUserRank(ctx, ids[0])
	require.NoError(t, err)
	require.Equal(t, 1, rank)

	rank, err = repo.GetUserRank(ctx, ids[2])
	require.NoError(t, err)
	require.Equal(t, 3, rank)
}
