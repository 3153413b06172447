package app

import (
	"github.com/gorilla/mux"
	"github.com/kharcha/kharcha/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Expenses
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Budgets
	r.HandleFunc("/api/budget", deps.BudgetHandler.Create).Methods("POST")
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Update).Methods("PUT")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/budget/status", deps.BudgetHandler.GetStatuses).Methods("GET")
	r.HandleFunc("/api/budget/overview", deps.BudgetHandler.GetOverview).Methods("GET")

	// Subscriptions
	r.HandleFunc("/api/subscription", deps.SubscriptionHandler.Create).Methods("POST")
	r.HandleFunc("/api/subscription", deps.SubscriptionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/subscription/{id}", deps.SubscriptionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/subscription/{id}", deps.SubscriptionHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/subscription/projections", deps.SubscriptionHandler.GetProjections).Methods("GET")
	r.HandleFunc("/api/subscription/overview", deps.SubscriptionHandler.GetOverview).Methods("GET")

	// Reports
	r.HandleFunc("/api/report/trend", deps.ReportHandler.GetTrend).Methods("GET")
	r.HandleFunc("/api/report/overview", deps.ReportHandler.GetOverview).Methods("GET")
	r.HandleFunc("/api/report/export", deps.ReportHandler.ExportExpenses).Methods("GET")
}
