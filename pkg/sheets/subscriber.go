package sheets

import (
	"context"

	"github.com/kharcha/kharcha/internal/event_bus"
	"github.com/kharcha/kharcha/pkg/expense"
	log "github.com/sirupsen/logrus"
)

// RegisterSubscriber mirrors every created expense to the spreadsheet. The
// mirror is append-only, so deletions only leave a log trail.
func RegisterSubscriber(bus *event_bus.EventBus, mirror ExpenseMirror) {
	event_bus.SubscribeTyped(bus, event_bus.ExpenseCreatedEvent,
		func(ctx context.Context, data event_bus.ExpenseCreated) error {
			return mirror.Append(ctx, expense.Expense{
				Id:          data.Id,
				Amount:      data.Amount,
				Category:    data.Category,
				Description: data.Description,
				Date:        data.Date,
			})
		})

	event_bus.SubscribeTyped(bus, event_bus.ExpenseDeletedEvent,
		func(ctx context.Context, data event_bus.ExpenseDeleted) error {
			log.Infof("expense %s deleted locally; mirrored row in the spreadsheet is kept", data.Id)
			return nil
		})
}
