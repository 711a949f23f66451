package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestAwardXPCrossesLevelBoundary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 980, 0)

	profile, err := env.progress.AwardXP(ctx, userID, 30, true)
	require.NoError(t, err)
	require.Equal(t, 1010, profile.XP)
	require.Equal(t, 2, profile.Level)
	require.Equal(t, 3, profile.Coins) // 30 XP -> 3 coins

	stored, err := env.profilesRepo.GetByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.Level)
	require.Equal(t, 3, stored.Coins)
}

func TestAwardXPZeroIsValidNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	profile, err := env.progress.AwardXP(ctx, userID, 0, true)
	require.NoError(t, err)
	require.Equal(t, 0, profile.XP)
	require.Equal(t, 1, profile.Level)
	require.Equal(t, 0, profile.Coins)
}

func TestAwardXPRejectsNegative(t *testing.T) {
	env := newTestEnv(t)
	userID := env.createUser(t, 100, 0)

	_, err := env.progress.AwardXP(context.Background(), userID, -5, false)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestAwardXPWithoutCoinsLeavesBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 42)

	profile, err := env.progress.AwardXP(ctx, userID, 100, false)
	require.NoError(t, err)
	require.Equal(t, 100, profile.XP)
	require.Equal(t, 42, profile.Coins)
}

func TestDailyLoginFirstEver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	result, err := env.progress.DailyLogin(ctx, userID)
	require.NoError(t, err)
	require.True(t, result.Awarded)
	require.Equal(t, 1, result.Streak)
	require.Equal(t, XPDailyLogin, result.XPAwarded)

	profile, err := env.profilesRepo.GetByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 1, profile.Streak)
	require.Equal(t, XPDailyLogin, profile.XP)
	require.Equal(t, XPDailyLogin/10, profile.Coins)
	require.False(t, profile.LastLoginAt.IsZero())
}

func TestDailyLoginSameDayIsNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	first, err := env.progress.DailyLogin(ctx, userID)
	require.NoError(t, err)
	require.True(t, first.Awarded)

	second, err := env.progress.DailyLogin(ctx, userID)
	require.NoError(t, err)
	require.False(t, second.Awarded)
	require.Equal(t, 1, second.Streak)

	profile, err := env.profilesRepo.GetByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, XPDailyLogin, profile.XP) // awarded once, not twice
}

func TestDailyLoginConsecutiveDayIncrements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	yesterday := time.Now().UTC().Add(-24 * time.Hour)
	require.NoError(t, env.profilesRepo.UpdateFields(ctx, userID, map[string]interface{}{
		"streak":        5,
		"last_login_at": yesterday,
	}))

	result, err := env.progress.DailyLogin(ctx, userID)
	require.NoError(t, err)
	require.True(t, result.Awarded)
	require.Equal(t, 6, result.Streak)
	require.False(t, result.Milestone)
}

func TestDailyLoginGapResetsToOne(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	twoDaysAgo := time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, env.profilesRepo.UpdateFields(ctx, userID, map[string]interface{}{
		"streak":        5,
		"last_login_at": twoDaysAgo,
	}))

	result, err := env.progress.DailyLogin(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 1, result.Streak)
}

func TestDailyLoginWeeklyMilestone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := env.createUser(t, 0, 0)

	yesterday := time.Now().UTC().Add(-24 * time.Hour)
	require.NoError(t, env.profilesRepo.UpdateFields(ctx, userID, map[string]interface{}{
		"streak":        6,
		"last_login_at": yesterday,
	}))

	result, err := env.progress.DailyLogin(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 7, result.Streak)
	require.True(t, result.Milestone)
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC)
	lateYesterday := time.Date(2026, 3, 9, 23, 55, 0, 0, time.UTC)
	require.Equal(t, 1, daysBetween(lateYesterday, now))

	sameDay := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	require.Equal(t, 0, daysBetween(sameDay, now))

	lastWeek := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	require.Equal(t, 7, daysBetween(lastWeek, now))
}

func TestLevelForXP(t *testing.T) {
	require.Equal(t, 1, LevelForXP(0))
	require.Equal(t, 1, LevelForXP(999))
	require.Equal(t, 2, LevelForXP(1000))
	require.Equal(t, 3, LevelForXP(2500))
}
