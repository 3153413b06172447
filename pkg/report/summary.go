package report

import (
	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/shopspring/decimal"
)

// Summarize computes the top-line figures once so every dashboard panel works
// from the same numbers.
func Summarize(expenses []expense.Expense, totalIncome decimal.Decimal) Summary {
	totalExpenses := expense.TotalAmount(expenses)
	return Summary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetSavings:    totalIncome.Sub(totalExpenses),
	}
}
