package subscription

import (
	"errors"
	"fmt"
	"time"

	"github.com/kharcha/kharcha/internal/dates"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownBillingCycle = errors.New("unknown billing cycle")
	ErrNoSubscriptions     = errors.New("no subscriptions")
)

// A payment within this many days (including overdue) is flagged urgent.
const urgentWindowDays = 3

var monthsPerYear = decimal.NewFromInt(12)

// MonthlyEquivalent normalizes a subscription cost to a monthly figure:
// monthly amounts pass through unchanged, yearly amounts are divided by 12.
func MonthlyEquivalent(sub Subscription) (decimal.Decimal, error) {
	switch sub.Cycle {
	case CycleMonthly:
		return sub.Amount, nil
	case CycleYearly:
		return sub.Amount.Div(monthsPerYear), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownBillingCycle, sub.Cycle)
	}
}

// Project derives the billing state of a subscription as of today.
func Project(sub Subscription, today time.Time) (Projection, error) {
	monthly, err := MonthlyEquivalent(sub)
	if err != nil {
		return Projection{}, err
	}
	daysUntilDue := dates.DaysBetween(today, sub.NextDueDate)
	return Projection{
		Subscription:      sub,
		MonthlyEquivalent: monthly,
		DaysUntilDue:      daysUntilDue,
		Urgent:            daysUntilDue <= urgentWindowDays,
	}, nil
}

// ProjectAll projects every subscription, preserving input order.
func ProjectAll(subs []Subscription, today time.Time) ([]Projection, error) {
	projections := make([]Projection, 0, len(subs))
	for _, sub := range subs {
		projection, err := Project(sub, today)
		if err != nil {
			return nil, err
		}
		projections = append(projections, projection)
	}
	return projections, nil
}

// EarliestUpcoming returns the subscription with the smallest next due date.
// Ties go to the first occurrence in input order.
func EarliestUpcoming(subs []Subscription) (Subscription, error) {
	if len(subs) == 0 {
		return Subscription{}, ErrNoSubscriptions
	}
	earliest := subs[0]
	for _, sub := range subs[1:] {
		if sub.NextDueDate.Before(earliest.NextDueDate) {
			earliest = sub
		}
	}
	return earliest, nil
}

// TotalMonthlyCost sums the monthly-equivalent cost of all subscriptions.
// Empty input costs zero.
func TotalMonthlyCost(subs []Subscription) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, sub := range subs {
		monthly, err := MonthlyEquivalent(sub)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(monthly)
	}
	return total, nil
}

// TotalYearlyCost is the yearly projection of the total monthly cost.
func TotalYearlyCost(subs []Subscription) (decimal.Decimal, error) {
	monthly, err := TotalMonthlyCost(subs)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return monthly.Mul(monthsPerYear), nil
}
