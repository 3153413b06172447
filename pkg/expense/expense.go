package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	Id          string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	// ReceiptRef is an opaque reference to an uploaded receipt, empty when none.
	ReceiptRef string
}

// CategorySpend is the aggregated spend for a single category.
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
}
