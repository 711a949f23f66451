package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEnsureByNameReturnsSameRow(t *testing.T) {
	repo := NewAchievementRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.EnsureByName(ctx, "First Expense", "Log your first expense", "🎯")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)

	second, err := repo.EnsureByName(ctx, "First Expense", "different text", "x")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Log your first expense", second.Description)
}

func TestUnlockIsIdempotent(t *testing.T) {
	repo := NewAchievementRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	achievement, err := repo.EnsureByName(ctx, "Quiz Rookie", "Finish a quiz", "🧠")
	require.NoError(t, err)

	created, err := repo.Unlock(ctx, userID, achievement.ID)
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.Unlock(ctx, userID, achievement.ID)
	require.NoError(t, err)
	require.False(t, created)

	unlocked, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	require.Equal(t, "Quiz Rookie", unlocked[0].Name)
}
