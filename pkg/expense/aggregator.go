package expense

import (
	"time"

	"github.com/kharcha/kharcha/internal/dates"
	"github.com/shopspring/decimal"
)

// TotalForCategory sums the amounts of all expenses whose category matches
// exactly (case-sensitive). No matches yields zero.
func TotalForCategory(expenses []Expense, category string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Category == category {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalsByCategory aggregates spend per distinct category, one entry per
// category in first-seen order.
func TotalsByCategory(expenses []Expense) []CategorySpend {
	totals := make([]CategorySpend, 0)
	indexByCategory := make(map[string]int)
	for _, e := range expenses {
		idx, seen := indexByCategory[e.Category]
		if !seen {
			indexByCategory[e.Category] = len(totals)
			totals = append(totals, CategorySpend{Category: e.Category, Total: e.Amount})
			continue
		}
		totals[idx].Total = totals[idx].Total.Add(e.Amount)
	}
	return totals
}

// TotalInRange sums the amounts of expenses whose date falls on any calendar
// day from rangeStart to rangeEnd inclusive.
func TotalInRange(expenses []Expense, rangeStart, rangeEnd time.Time) decimal.Decimal {
	startDay := dates.Midnight(rangeStart)
	endDay := dates.Midnight(rangeEnd)
	total := decimal.Zero
	for _, e := range expenses {
		day := dates.Midnight(e.Date.In(rangeStart.Location()))
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// TotalInMonth sums the amounts of expenses dated within the given month.
func TotalInMonth(expenses []Expense, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if dates.IsInMonth(e.Date, month, year) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalAmount sums the amounts of all expenses.
func TotalAmount(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
