package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kharcha/kharcha/internal/dates"
	"github.com/kharcha/kharcha/internal/rest"
	"github.com/kharcha/kharcha/pkg/budget"
	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/kharcha/kharcha/pkg/subscription"
)

type TrendPointDTO struct {
	Date         time.Time `json:"date"`
	ExpenseTotal float64   `json:"expenseTotal"`
	Baseline     float64   `json:"baseline"`
}

type SummaryDTO struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetSavings    float64 `json:"netSavings"`
}

type DashboardOverviewDTO struct {
	Summary              SummaryDTO               `json:"summary"`
	CurrentMonthExpenses float64                  `json:"currentMonthExpenses"`
	Trend                []TrendPointDTO          `json:"trend"`
	Budgets              []budget.StatusDTO       `json:"budgets"`
	Subscriptions        subscription.OverviewDTO `json:"subscriptions"`
}

type ReportHandler struct {
	reportService      ReportService
	csvExpenseRenderer ExpenseRenderer
}

func NewReportHandler(reportService ReportService, csvExpenseRenderer ExpenseRenderer) *ReportHandler {
	return &ReportHandler{reportService, csvExpenseRenderer}
}

func (handler *ReportHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	days := defaultTrendDays
	if daysString := r.URL.Query().Get("days"); daysString != "" {
		parsed, err := strconv.Atoi(daysString)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid days format",
				Details: "days must be an integer",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		days = parsed
	}

	trend, err := handler.reportService.Trend(r.Context(), days)
	if err != nil {
		if errors.Is(err, dates.ErrInvalidDays) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	trendDTO := make([]TrendPointDTO, 0, len(trend))
	for _, point := range trend {
		trendDTO = append(trendDTO, TrendPointToDTO(point))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(trendDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ReportHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	trendDays := 0
	if daysString := r.URL.Query().Get("trendDays"); daysString != "" {
		parsed, err := strconv.Atoi(daysString)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid trendDays format",
				Details: "trendDays must be an integer",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		trendDays = parsed
	}

	overview, err := handler.reportService.Overview(r.Context(), trendDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(overviewToDTO(overview)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// ExportExpenses returns all expense records, as CSV when the client asks for
// text/csv and as JSON otherwise.
func (handler *ReportHandler) ExportExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := handler.reportService.Expenses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.csvExpenseRenderer.RenderExpenses(expenses)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	expensesDTO := make([]expense.ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		expensesDTO = append(expensesDTO, expense.ExpenseToDTO(e))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expensesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func TrendPointToDTO(point TrendPoint) TrendPointDTO {
	return TrendPointDTO{
		Date:         point.Date,
		ExpenseTotal: point.ExpenseTotal.Round(2).InexactFloat64(),
		Baseline:     point.Baseline.Round(2).InexactFloat64(),
	}
}

func overviewToDTO(overview DashboardOverview) DashboardOverviewDTO {
	trendDTO := make([]TrendPointDTO, 0, len(overview.Trend))
	for _, point := range overview.Trend {
		trendDTO = append(trendDTO, TrendPointToDTO(point))
	}
	budgetsDTO := make([]budget.StatusDTO, 0, len(overview.Budgets))
	for _, status := range overview.Budgets {
		budgetsDTO = append(budgetsDTO, budget.StatusToDTO(status))
	}
	return DashboardOverviewDTO{
		Summary: SummaryDTO{
			TotalIncome:   overview.Summary.TotalIncome.Round(2).InexactFloat64(),
			TotalExpenses: overview.Summary.TotalExpenses.Round(2).InexactFloat64(),
			NetSavings:    overview.Summary.NetSavings.Round(2).InexactFloat64(),
		},
		CurrentMonthExpenses: overview.CurrentMonthExpenses.Round(2).InexactFloat64(),
		Trend:                trendDTO,
		Budgets:              budgetsDTO,
		Subscriptions:        subscription.OverviewToDTO(overview.Subscriptions),
	}
}
