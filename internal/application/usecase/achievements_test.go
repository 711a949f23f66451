package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFirstExpenseUnlockedExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	input := CreateExpenseInput{Amount: decimal.NewFromInt(25), Category: "food"}

	_, unlocked, err := env.expenses.Create(ctx, userID, input)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	require.Equal(t, "First Expense", unlocked[0].Name)

	_, unlocked, err = env.expenses.Create(ctx, userID, input)
	require.NoError(t, err)
	require.Empty(t, unlocked)

	list, err := env.achievements.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestLevelAchievementFiresOnThreshold(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	// 4200 XP puts the user at level 5
	_, err := env.progress.AwardXP(ctx, userID, 4200, false)
	require.NoError(t, err)

	unlocked, err := env.achievements.Check(ctx, userID, MetricLevel)
	require.NoError(t, err)

	names := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		names = append(names, a.Name)
	}
	require.Contains(t, names, "Level 5")
	require.NotContains(t, names, "Level 10")
}

func TestStreakAchievement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	require.NoError(t, env.profilesRepo.UpdateFields(ctx, userID, map[string]interface{}{"streak": 7}))

	unlocked, err := env.achievements.Check(ctx, userID, MetricStreak)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	require.Equal(t, "Week Streak", unlocked[0].Name)
}

func TestCheckUnknownMetric(t *testing.T) {
	env := newTestEnv(t)
	userID := env.createUser(t, 0, 0)

	_, err := env.achievements.Check(context.Background(), userID, "hat_count")
	require.Error(t, err)
}

func TestCheckReturnsOnlyNewUnlocks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	require.NoError(t, env.profilesRepo.UpdateFields(ctx, userID, map[string]interface{}{"streak": 7}))

	first, err := env.achievements.Check(ctx, userID, MetricStreak)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := env.achievements.Check(ctx, userID, MetricStreak)
	require.NoError(t, err)
	require.Empty(t, second)
}
