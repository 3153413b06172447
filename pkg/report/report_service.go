package report

import (
	"context"

	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/budget"
	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/kharcha/kharcha/pkg/subscription"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// The income baseline is spread over a flat 30-day month.
var daysPerMonth = decimal.NewFromInt(30)

const defaultTrendDays = 7

type ExpenseReader interface {
	GetAll(ctx context.Context) ([]expense.Expense, error)
}

type BudgetStatusReader interface {
	Statuses(ctx context.Context) ([]budget.Status, error)
}

type SubscriptionOverviewReader interface {
	Overview(ctx context.Context) (subscription.Overview, error)
}

type ReportService interface {
	Trend(ctx context.Context, days int) ([]TrendPoint, error)
	Overview(ctx context.Context, trendDays int) (DashboardOverview, error)
	Expenses(ctx context.Context) ([]expense.Expense, error)
}

type ReportServiceImpl struct {
	expenses      ExpenseReader
	budgets       BudgetStatusReader
	subscriptions SubscriptionOverviewReader
	monthlyIncome decimal.Decimal
	clock         utils.Clock
}

func NewReportServiceImpl(
	expenses ExpenseReader,
	budgets BudgetStatusReader,
	subscriptions SubscriptionOverviewReader,
	monthlyIncome decimal.Decimal,
	clock utils.Clock,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		expenses:      expenses,
		budgets:       budgets,
		subscriptions: subscriptions,
		monthlyIncome: monthlyIncome,
		clock:         clock,
	}
}

// Trend builds the daily spending series for the last `days` days against the
// flat daily income baseline.
func (s *ReportServiceImpl) Trend(ctx context.Context, days int) ([]TrendPoint, error) {
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDailySeries(expenses, days, s.dailyBaseline(), s.clock.Now())
}

// Overview assembles the whole dashboard in one call. The three record sources
// are independent, so they are fetched concurrently.
func (s *ReportServiceImpl) Overview(ctx context.Context, trendDays int) (DashboardOverview, error) {
	if trendDays <= 0 {
		trendDays = defaultTrendDays
	}

	var (
		expenses             []expense.Expense
		budgetStatuses       []budget.Status
		subscriptionOverview subscription.Overview
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		expenses, err = s.expenses.GetAll(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		budgetStatuses, err = s.budgets.Statuses(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		subscriptionOverview, err = s.subscriptions.Overview(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return DashboardOverview{}, err
	}

	now := s.clock.Now()
	trend, err := BuildDailySeries(expenses, trendDays, s.dailyBaseline(), now)
	if err != nil {
		return DashboardOverview{}, err
	}

	return DashboardOverview{
		Summary:              Summarize(expenses, s.monthlyIncome),
		CurrentMonthExpenses: expense.TotalInMonth(expenses, now.Month(), now.Year()),
		Trend:                trend,
		Budgets:              budgetStatuses,
		Subscriptions:        subscriptionOverview,
	}, nil
}

// Expenses exposes the raw records for export rendering.
func (s *ReportServiceImpl) Expenses(ctx context.Context) ([]expense.Expense, error) {
	return s.expenses.GetAll(ctx)
}

func (s *ReportServiceImpl) dailyBaseline() decimal.Decimal {
	return s.monthlyIncome.Div(daysPerMonth)
}
