package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/kharcha/kharcha/internal/test_utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubscriptionRepo(t *testing.T) (*SubscriptionRepoImpl, context.Context) {
	db := test_utils.SetupTestDB(t)
	return NewSubscriptionRepo(db), context.Background()
}

func TestSubscriptionRepoImpl_StoreAndGetAll(t *testing.T) {
	repo, ctx := setupSubscriptionRepo(t)

	// given
	sub := Subscription{
		Id:          "s1",
		ServiceName: "Netflix",
		Amount:      decimal.RequireFromString("499.00"),
		Cycle:       CycleMonthly,
		NextDueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		Category:    "Entertainment",
	}

	// when
	err := repo.Store(ctx, sub)

	// then
	require.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "s1", stored[0].Id)
	assert.Equal(t, "Netflix", stored[0].ServiceName)
	assert.Equal(t, CycleMonthly, stored[0].Cycle)
	assert.Equal(t, "Entertainment", stored[0].Category)
	assert.True(t, stored[0].Amount.Equal(decimal.RequireFromString("499.00")), "got %s", stored[0].Amount)
	assert.Equal(t, "2024-04-01", stored[0].NextDueDate.Format("2006-01-02"))
}

func TestSubscriptionRepoImpl_Update(t *testing.T) {
	repo, ctx := setupSubscriptionRepo(t)

	// given
	sub := Subscription{
		Id:          "s1",
		ServiceName: "Netflix",
		Amount:      decimal.NewFromInt(499),
		Cycle:       CycleMonthly,
		NextDueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Store(ctx, sub))

	// when
	sub.Amount = decimal.NewFromInt(5988)
	sub.Cycle = CycleYearly
	updated, err := repo.Update(ctx, sub)

	// then
	require.NoError(t, err)
	assert.True(t, updated)
	stored, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, CycleYearly, stored[0].Cycle)
	assert.True(t, stored[0].Amount.Equal(decimal.NewFromInt(5988)), "got %s", stored[0].Amount)
}

func TestSubscriptionRepoImpl_Update_MissingRow(t *testing.T) {
	repo, ctx := setupSubscriptionRepo(t)

	updated, err := repo.Update(ctx, Subscription{
		Id:          "ghost",
		ServiceName: "Netflix",
		Amount:      decimal.NewFromInt(499),
		Cycle:       CycleMonthly,
		NextDueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, updated)
}

func TestSubscriptionRepoImpl_Delete(t *testing.T) {
	repo, ctx := setupSubscriptionRepo(t)

	// given
	require.NoError(t, repo.Store(ctx, Subscription{
		Id:          "s1",
		ServiceName: "Netflix",
		Amount:      decimal.NewFromInt(499),
		Cycle:       CycleMonthly,
		NextDueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	}))

	// when
	deleted, err := repo.Delete(ctx, "s1")

	// then
	require.NoError(t, err)
	assert.True(t, deleted)
	stored, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
