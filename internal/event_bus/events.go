package event_bus

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ExpenseCreatedEvent EventType = "expense.created"
	ExpenseDeletedEvent EventType = "expense.deleted"
)

type ExpenseCreated struct {
	Id          string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

type ExpenseDeleted struct {
	Id string
}
