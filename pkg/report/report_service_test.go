package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/budget"
	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/kharcha/kharcha/pkg/subscription"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newReportService(
	expenses *stubExpenseReader,
	budgets *stubBudgetStatusReader,
	subscriptions *stubSubscriptionOverviewReader,
) *ReportServiceImpl {
	clock := utils.NewMockClock(trendToday)
	return NewReportServiceImpl(expenses, budgets, subscriptions, decimal.NewFromInt(30000), clock)
}

func TestReportService_Trend(t *testing.T) {
	expenses := &stubExpenseReader{expenses: []expense.Expense{
		{Category: "Food", Amount: decimal.NewFromInt(50), Date: trendToday},
	}}
	service := newReportService(expenses, &stubBudgetStatusReader{}, &stubSubscriptionOverviewReader{})

	trend, err := service.Trend(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, trend, 7)
	// 30000 monthly income spreads to a flat 1000 per day.
	for _, point := range trend {
		assert.True(t, point.Baseline.Equal(decimal.NewFromInt(1000)), "got %s", point.Baseline)
	}
	assert.True(t, trend[6].ExpenseTotal.Equal(decimal.NewFromInt(50)), "got %s", trend[6].ExpenseTotal)
}

func TestReportService_Overview(t *testing.T) {
	foodBudget := budget.Budget{Id: "b1", Category: "Food", Limit: decimal.NewFromInt(100)}
	expenses := &stubExpenseReader{expenses: []expense.Expense{
		{Category: "Food", Amount: decimal.NewFromInt(50), Date: trendToday},
		{Category: "Transport", Amount: decimal.NewFromInt(20), Date: trendToday.AddDate(0, 0, -1)},
		{Category: "Rent", Amount: decimal.NewFromInt(999), Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
	}}
	budgets := &stubBudgetStatusReader{statuses: []budget.Status{
		{Budget: foodBudget, Spent: decimal.NewFromInt(50), Percentage: 50, Exceeded: false},
	}}
	subscriptions := &stubSubscriptionOverviewReader{overview: subscription.Overview{
		TotalMonthlyCost: decimal.NewFromInt(599),
		TotalYearlyCost:  decimal.NewFromInt(7188),
		ServiceCount:     2,
	}}
	service := newReportService(expenses, budgets, subscriptions)

	overview, err := service.Overview(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, overview.Summary.TotalExpenses.Equal(decimal.NewFromInt(1069)), "got %s", overview.Summary.TotalExpenses)
	assert.True(t, overview.Summary.NetSavings.Equal(decimal.NewFromInt(28931)), "got %s", overview.Summary.NetSavings)
	// The February rent stays out of the March figure.
	assert.True(t, overview.CurrentMonthExpenses.Equal(decimal.NewFromInt(70)), "got %s", overview.CurrentMonthExpenses)
	assert.Len(t, overview.Trend, 7)
	assert.Len(t, overview.Budgets, 1)
	assert.Equal(t, "Food", overview.Budgets[0].Budget.Category)
	assert.Equal(t, 2, overview.Subscriptions.ServiceCount)
}

func TestReportService_Overview_DefaultTrendWindow(t *testing.T) {
	service := newReportService(&stubExpenseReader{}, &stubBudgetStatusReader{}, &stubSubscriptionOverviewReader{})

	overview, err := service.Overview(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, overview.Trend, defaultTrendDays)
}

func TestReportService_Overview_PropagatesFetchErrors(t *testing.T) {
	budgetErr := errors.New("budget storage unavailable")
	budgets := &stubBudgetStatusReader{err: budgetErr}
	service := newReportService(&stubExpenseReader{}, budgets, &stubSubscriptionOverviewReader{})

	_, err := service.Overview(context.Background(), 7)

	assert.ErrorIs(t, err, budgetErr)
}

func TestReportService_Overview_IsDeterministicForAFixedClock(t *testing.T) {
	expenses := &stubExpenseReader{expenses: []expense.Expense{
		{Category: "Food", Amount: decimal.NewFromInt(50), Date: time.Date(2024, time.March, 14, 8, 0, 0, 0, time.UTC)},
	}}
	service := newReportService(expenses, &stubBudgetStatusReader{}, &stubSubscriptionOverviewReader{})

	first, err := service.Overview(context.Background(), 7)
	assert.NoError(t, err)
	second, err := service.Overview(context.Background(), 7)
	assert.NoError(t, err)

	assert.Equal(t, first.Trend, second.Trend)
	assert.True(t, first.Summary.TotalExpenses.Equal(second.Summary.TotalExpenses))
}
