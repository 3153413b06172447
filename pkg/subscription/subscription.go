package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingCycle is the recurrence period of a subscription charge.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "Monthly"
	CycleYearly  BillingCycle = "Yearly"
)

type Subscription struct {
	Id          string
	ServiceName string
	Amount      decimal.Decimal
	Cycle       BillingCycle
	NextDueDate time.Time
	Category    string
}

// Projection is the derived billing state of a subscription as of a given day.
type Projection struct {
	Subscription Subscription
	// MonthlyEquivalent normalizes the cost across billing cycles so services
	// can be compared on one scale.
	MonthlyEquivalent decimal.Decimal
	// DaysUntilDue is signed: negative means overdue, zero means due today.
	DaysUntilDue int
	Urgent       bool
}
