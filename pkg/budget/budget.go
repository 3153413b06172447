package budget

import (
	"github.com/shopspring/decimal"
)

type Budget struct {
	Id       string
	Category string
	// Limit is the spending cap for the category. Must be positive before the
	// budget reaches the evaluator.
	Limit decimal.Decimal
	// ColorTag is an opaque display token chosen by the UI.
	ColorTag string
}

// Status is the derived utilization state of a single budget.
type Status struct {
	Budget Budget
	Spent  decimal.Decimal
	// Percentage is the spent-to-limit ratio clamped to [0, 100]. Overage is
	// signaled via Exceeded, never via a percentage above 100.
	Percentage float64
	Exceeded   bool
}

// Overview aggregates utilization across all budgets.
type Overview struct {
	TotalLimit     decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalRemaining decimal.Decimal
	Percentage     float64
}
