package expense

import (
	"context"
	"testing"
	"time"

	"github.com/kharcha/kharcha/internal/event_bus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupService() (*ExpenseServiceImpl, *StubExpenseRepo, *event_bus.EventBus) {
	repo := NewStubExpenseRepo()
	bus := event_bus.NewEventBus()
	return NewExpenseServiceImpl(repo, bus), repo, bus
}

func TestExpenseServiceImpl_Create(t *testing.T) {
	t.Run("assigns an id and stores the expense", func(t *testing.T) {
		service, repo, _ := setupService()

		created, err := service.Create(context.Background(), Expense{
			Amount:   decimal.NewFromInt(250),
			Category: "Food",
			Date:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		stored, _ := repo.GetAll(context.Background())
		assert.Len(t, stored, 1)
		assert.Equal(t, created.Id, stored[0].Id)
	})

	t.Run("publishes an expense created event", func(t *testing.T) {
		service, _, bus := setupService()
		var received []event_bus.ExpenseCreated
		event_bus.SubscribeTyped(bus, event_bus.ExpenseCreatedEvent, func(ctx context.Context, data event_bus.ExpenseCreated) error {
			received = append(received, data)
			return nil
		})

		created, err := service.Create(context.Background(), Expense{
			Amount:   decimal.NewFromInt(99),
			Category: "Entertainment",
			Date:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Len(t, received, 1)
		assert.Equal(t, created.Id, received[0].Id)
		assert.Equal(t, "Entertainment", received[0].Category)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		service, repo, _ := setupService()

		_, err := service.Create(context.Background(), Expense{
			Amount:   decimal.NewFromInt(-1),
			Category: "Food",
			Date:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		})

		assert.ErrorIs(t, err, ErrNegativeAmount)
		stored, _ := repo.GetAll(context.Background())
		assert.Empty(t, stored)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		service, _, _ := setupService()

		_, err := service.Create(context.Background(), Expense{
			Amount: decimal.NewFromInt(10),
			Date:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		})

		assert.ErrorIs(t, err, ErrMissingCategory)
	})

	t.Run("rejects missing date", func(t *testing.T) {
		service, _, _ := setupService()

		_, err := service.Create(context.Background(), Expense{
			Amount:   decimal.NewFromInt(10),
			Category: "Food",
		})

		assert.ErrorIs(t, err, ErrMissingDate)
	})
}

func TestExpenseServiceImpl_Delete(t *testing.T) {
	t.Run("publishes an expense deleted event", func(t *testing.T) {
		service, _, bus := setupService()
		var deletedIds []string
		event_bus.SubscribeTyped(bus, event_bus.ExpenseDeletedEvent, func(ctx context.Context, data event_bus.ExpenseDeleted) error {
			deletedIds = append(deletedIds, data.Id)
			return nil
		})
		created, _ := service.Create(context.Background(), Expense{
			Amount:   decimal.NewFromInt(10),
			Category: "Food",
			Date:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		})

		ok, err := service.Delete(context.Background(), created.Id)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{created.Id}, deletedIds)
	})

	t.Run("fails for an unknown id", func(t *testing.T) {
		service, _, _ := setupService()

		ok, err := service.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.False(t, ok)
	})
}
