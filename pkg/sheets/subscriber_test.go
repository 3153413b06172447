package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/kharcha/kharcha/internal/event_bus"
	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubExpenseMirror struct {
	appended []expense.Expense
	err      error
}

func (s *stubExpenseMirror) Append(ctx context.Context, e expense.Expense) error {
	if s.err != nil {
		return s.err
	}
	s.appended = append(s.appended, e)
	return nil
}

func TestRegisterSubscriber(t *testing.T) {
	t.Run("appends a row for every created expense", func(t *testing.T) {
		// given
		bus := event_bus.NewEventBus()
		mirror := &stubExpenseMirror{}
		RegisterSubscriber(bus, mirror)

		// when
		err := bus.Publish(event_bus.NewEvent(context.Background(), event_bus.ExpenseCreatedEvent, event_bus.ExpenseCreated{
			Id:          "e1",
			Amount:      decimal.RequireFromString("50.50"),
			Category:    "Food",
			Description: "Groceries",
			Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		}))

		// then
		assert.NoError(t, err)
		assert.Len(t, mirror.appended, 1)
		assert.Equal(t, "e1", mirror.appended[0].Id)
		assert.Equal(t, "Food", mirror.appended[0].Category)
		assert.True(t, mirror.appended[0].Amount.Equal(decimal.RequireFromString("50.50")))
	})

	t.Run("ignores deletions", func(t *testing.T) {
		bus := event_bus.NewEventBus()
		mirror := &stubExpenseMirror{}
		RegisterSubscriber(bus, mirror)

		err := bus.Publish(event_bus.NewEvent(context.Background(), event_bus.ExpenseDeletedEvent, event_bus.ExpenseDeleted{Id: "e1"}))

		assert.NoError(t, err)
		assert.Empty(t, mirror.appended)
	})
}
