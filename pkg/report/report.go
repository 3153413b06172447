package report

import (
	"time"

	"github.com/kharcha/kharcha/pkg/budget"
	"github.com/kharcha/kharcha/pkg/subscription"
	"github.com/shopspring/decimal"
)

// TrendPoint is a single day on the spending trend chart. Baseline carries the
// flat daily income reference so the chart can draw both lines from one series.
type TrendPoint struct {
	Date         time.Time
	ExpenseTotal decimal.Decimal
	Baseline     decimal.Decimal
}

// Summary holds the top-line dashboard figures.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal
}

// DashboardOverview bundles everything the dashboard view renders in one response.
type DashboardOverview struct {
	Summary Summary
	// CurrentMonthExpenses covers only the calendar month of the request day.
	CurrentMonthExpenses decimal.Decimal
	Trend                []TrendPoint
	Budgets              []budget.Status
	Subscriptions        subscription.Overview
}
