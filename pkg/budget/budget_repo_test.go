package budget

import (
	"context"
	"testing"

	"github.com/kharcha/kharcha/internal/test_utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBudgetRepo(t *testing.T) (*BudgetRepoImpl, context.Context) {
	db := test_utils.SetupTestDB(t)
	return NewBudgetRepo(db), context.Background()
}

func TestBudgetRepoImpl_StoreAndGetAll(t *testing.T) {
	repo, ctx := setupBudgetRepo(t)

	// given
	budget := Budget{
		Id:       "b1",
		Category: "Food",
		Limit:    decimal.NewFromInt(5000),
		ColorTag: "emerald",
	}

	// when
	err := repo.Store(ctx, budget)

	// then
	require.NoError(t, err)
	stored, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "b1", stored[0].Id)
	assert.Equal(t, "Food", stored[0].Category)
	assert.Equal(t, "emerald", stored[0].ColorTag)
	assert.True(t, stored[0].Limit.Equal(decimal.NewFromInt(5000)), "got %s", stored[0].Limit)
}

func TestBudgetRepoImpl_Update(t *testing.T) {
	repo, ctx := setupBudgetRepo(t)

	// given
	budget := Budget{Id: "b1", Category: "Food", Limit: decimal.NewFromInt(5000)}
	require.NoError(t, repo.Store(ctx, budget))

	// when
	budget.Limit = decimal.NewFromInt(6000)
	budget.ColorTag = "amber"
	updated, err := repo.Update(ctx, budget)

	// then
	require.NoError(t, err)
	assert.True(t, updated)
	stored, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "amber", stored[0].ColorTag)
	assert.True(t, stored[0].Limit.Equal(decimal.NewFromInt(6000)), "got %s", stored[0].Limit)
}

func TestBudgetRepoImpl_Update_MissingRow(t *testing.T) {
	repo, ctx := setupBudgetRepo(t)

	updated, err := repo.Update(ctx, Budget{Id: "ghost", Category: "Food", Limit: decimal.NewFromInt(100)})

	require.NoError(t, err)
	assert.False(t, updated)
}

func TestBudgetRepoImpl_Delete(t *testing.T) {
	repo, ctx := setupBudgetRepo(t)

	// given
	require.NoError(t, repo.Store(ctx, Budget{Id: "b1", Category: "Food", Limit: decimal.NewFromInt(5000)}))

	// when
	deleted, err := repo.Delete(ctx, "b1")

	// then
	require.NoError(t, err)
	assert.True(t, deleted)
	stored, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
