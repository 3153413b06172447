package budget

import (
	"errors"

	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/shopspring/decimal"
)

// ErrInvalidLimit is returned when a budget reaches evaluation with a
// non-positive limit. Budget creation validates upstream; the evaluator never
// silently coerces.
var ErrInvalidLimit = errors.New("budget limit must be positive")

var oneHundred = decimal.NewFromInt(100)

// Evaluate combines a budget with the spend recorded against its category.
func Evaluate(b Budget, expenses []expense.Expense) (Status, error) {
	if !b.Limit.IsPositive() {
		return Status{}, ErrInvalidLimit
	}
	spent := expense.TotalForCategory(expenses, b.Category)
	return Status{
		Budget:     b,
		Spent:      spent,
		Percentage: utilization(spent, b.Limit),
		Exceeded:   spent.GreaterThan(b.Limit),
	}, nil
}

// EvaluateAll evaluates every budget, preserving input order. Budgets sharing
// a category each see the full category spend.
func EvaluateAll(budgets []Budget, expenses []expense.Expense) ([]Status, error) {
	statuses := make([]Status, 0, len(budgets))
	for _, b := range budgets {
		status, err := Evaluate(b, expenses)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Summarize reduces evaluated statuses to the cross-budget overview shown at
// the top of the budgets page.
func Summarize(statuses []Status) Overview {
	totalLimit := decimal.Zero
	totalSpent := decimal.Zero
	for _, s := range statuses {
		totalLimit = totalLimit.Add(s.Budget.Limit)
		totalSpent = totalSpent.Add(s.Spent)
	}
	percentage := 0.0
	if totalLimit.IsPositive() {
		percentage = utilization(totalSpent, totalLimit)
	}
	return Overview{
		TotalLimit:     totalLimit,
		TotalSpent:     totalSpent,
		TotalRemaining: totalLimit.Sub(totalSpent),
		Percentage:     percentage,
	}
}

func utilization(spent, limit decimal.Decimal) float64 {
	if !spent.IsPositive() {
		return 0
	}
	percentage, _ := spent.Div(limit).Mul(oneHundred).Float64()
	return min(percentage, 100)
}
