package usecase

import (
	"context"
	"testing"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGoalAddAccumulates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	goal, err := env.goals.Create(ctx, userID, "New laptop", "L", decimal.NewFromInt(1000), nil)
	require.NoError(t, err)

	result, err := env.goals.Add(ctx, userID, goal.ID, decimal.NewFromInt(400))
	require.NoError(t, err)
	require.True(t, result.Goal.CurrentAmount.Equal(decimal.NewFromInt(400)))
	require.False(t, result.JustFinished)
	require.Equal(t, XPGoalAdd, result.XPAwarded)

	// contribution XP carries no coins
	profile, err := env.profilesRepo.GetByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, XPGoalAdd, profile.XP)
	require.Equal(t, 0, profile.Coins)
}

func TestGoalCompletionHappensAtAddTime(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	goal, err := env.goals.Create(ctx, userID, "Emergency fund", "E", decimal.NewFromInt(1000), nil)
	require.NoError(t, err)

	_, err = env.goals.Add(ctx, userID, goal.ID, decimal.NewFromInt(400))
	require.NoError(t, err)

	result, err := env.goals.Add(ctx, userID, goal.ID, decimal.NewFromInt(600))
	require.NoError(t, err)
	require.True(t, result.JustFinished)
	require.True(t, result.Goal.Completed)
	require.Equal(t, XPGoalAdd+XPGoalComplete, result.XPAwarded)

	profile, err := env.profilesRepo.GetByID(ctx, userID)
	require.NoError(t, err)
	// two contributions plus the completion bonus
	require.Equal(t, 2*XPGoalAdd+XPGoalComplete, profile.XP)
	require.Equal(t, XPGoalComplete/10, profile.Coins) // only the bonus pays coins
}

func TestGoalCompletionBonusPaidOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	goal, err := env.goals.Create(ctx, userID, "Trip", "T", decimal.NewFromInt(100), nil)
	require.NoError(t, err)

	first, err := env.goals.Add(ctx, userID, goal.ID, decimal.NewFromInt(150))
	require.NoError(t, err)
	require.True(t, first.JustFinished)

	second, err := env.goals.Add(ctx, userID, goal.ID, decimal.NewFromInt(50))
	require.NoError(t, err)
	require.False(t, second.JustFinished)
	require.True(t, second.Goal.Completed) // stays completed
	require.Equal(t, XPGoalAdd, second.XPAwarded)
}

func TestGoalAddRejectsNonPositive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	goal, err := env.goals.Create(ctx, userID, "Bike", "B", decimal.NewFromInt(300), nil)
	require.NoError(t, err)

	_, err = env.goals.Add(ctx, userID, goal.ID, decimal.Zero)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = env.goals.Add(ctx, userID, goal.ID, decimal.NewFromInt(-10))
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestGoalAddIsOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, 0, 0)
	stranger := env.createUser(t, 0, 0)

	goal, err := env.goals.Create(ctx, owner, "Car", "C", decimal.NewFromInt(5000), nil)
	require.NoError(t, err)

	_, err = env.goals.Add(ctx, stranger, goal.ID, decimal.NewFromInt(100))
	require.Error(t, err)
}

func TestGoalCreateRejectsNonPositiveTarget(t *testing.T) {
	env := newTestEnv(t)
	userID := env.createUser(t, 0, 0)

	_, err := env.goals.Create(context.Background(), userID, "Nothing", "N", decimal.Zero, nil)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}
