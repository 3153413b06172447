package report

import (
	"time"

	"github.com/kharcha/kharcha/internal/dates"
	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/shopspring/decimal"
)

// BuildDailySeries produces one TrendPoint per calendar day for the last
// `days` days ending on today, oldest first. Every point repeats the same
// dailyBaseline so the rendered reference line stays flat.
//
// Expenses are grouped by day up front, so building the series is
// O(days + expenses) instead of scanning all expenses per bucket.
func BuildDailySeries(expenses []expense.Expense, days int, dailyBaseline decimal.Decimal, today time.Time) ([]TrendPoint, error) {
	buckets, err := dates.BucketsForLastNDays(days, today)
	if err != nil {
		return nil, err
	}

	// Expense days are resolved in today's location so the map keys line up
	// with the bucket dates.
	totalsByDay := make(map[time.Time]decimal.Decimal, days)
	for _, e := range expenses {
		day := dates.Midnight(e.Date.In(today.Location()))
		totalsByDay[day] = totalsByDay[day].Add(e.Amount)
	}

	series := make([]TrendPoint, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, TrendPoint{
			Date:         bucket,
			ExpenseTotal: totalsByDay[bucket],
			Baseline:     dailyBaseline,
		})
	}
	return series, nil
}
