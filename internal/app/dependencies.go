package app

import (
	"context"
	"database/sql"

	"github.com/kharcha/kharcha/internal/config"
	"github.com/kharcha/kharcha/internal/event_bus"
	"github.com/kharcha/kharcha/internal/utils"
	"github.com/kharcha/kharcha/pkg/budget"
	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/kharcha/kharcha/pkg/report"
	"github.com/kharcha/kharcha/pkg/sheets"
	"github.com/kharcha/kharcha/pkg/subscription"
	"github.com/shopspring/decimal"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	ExpenseRepo    expense.ExpenseRepo
	ExpenseService expense.ExpenseService
	ExpenseHandler *expense.ExpenseHandler

	BudgetRepo    budget.BudgetRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	SubscriptionRepo    subscription.SubscriptionRepo
	SubscriptionService *subscription.SubscriptionServiceImpl
	SubscriptionHandler *subscription.SubscriptionHandler

	ReportService      *report.ReportServiceImpl
	CsvExpenseRenderer *report.CsvExpenseRendererImpl
	ReportHandler      *report.ReportHandler

	SheetsMirror sheets.ExpenseMirror
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(ctx context.Context, db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseServiceImpl(deps.ExpenseRepo, deps.Bus)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService)

	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetServiceImpl(deps.BudgetRepo, deps.ExpenseService)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.SubscriptionRepo = subscription.NewSubscriptionRepo(db)
	deps.SubscriptionService = subscription.NewSubscriptionServiceImpl(deps.SubscriptionRepo, deps.Clock)
	deps.SubscriptionHandler = subscription.NewSubscriptionHandler(deps.SubscriptionService)

	monthlyIncome := decimal.NewFromFloat(cfg.Report.MonthlyIncome)
	deps.ReportService = report.NewReportServiceImpl(
		deps.ExpenseService,
		deps.BudgetService,
		deps.SubscriptionService,
		monthlyIncome,
		deps.Clock,
	)
	deps.CsvExpenseRenderer = report.NewCsvExpenseRenderer()
	deps.ReportHandler = report.NewReportHandler(deps.ReportService, deps.CsvExpenseRenderer)

	if cfg.Sheets.Enabled {
		mirror, err := sheets.NewGoogleSheetsMirror(ctx, cfg.Sheets)
		if err != nil {
			return nil, err
		}
		deps.SheetsMirror = mirror
		sheets.RegisterSubscriber(deps.Bus, deps.SheetsMirror)
	}

	return deps, nil
}
