package repository

import (
	"context"
	"testing"

	"github.com/vamsipakalapati4107/finlit4/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestBudgetUpsertKeepsOneRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := &domain.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  "groceries",
		Period:    "2026-08",
		Allocated: decimal.NewFromInt(400),
	}
	require.NoError(t, repo.Upsert(ctx, first))

	// Same (category, period): the allocation is replaced, not duplicated
	second := &domain.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  "groceries",
		Period:    "2026-08",
		Allocated: decimal.NewFromInt(550),
	}
	require.NoError(t, repo.Upsert(ctx, second))

	budgets, err := repo.ListByUserPeriod(ctx, userID, "2026-08")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	require.True(t, budgets[0].Allocated.Equal(decimal.NewFromInt(550)))

	// A different period is its own row
	other := &domain.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  "groceries",
		Period:    "2026-09",
		Allocated: decimal.NewFromInt(300),
	}
	require.NoError(t, repo.Upsert(ctx, other))

	var count int64
	require.NoError(t, db.Model(&domain.Budget{}).Count(&count).Error)
	require.Equal(t, int64(2), count)
}
