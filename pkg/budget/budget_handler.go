package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	Id       string  `json:"id,omitempty"`
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	ColorTag string  `json:"color,omitempty"`
}

type StatusDTO struct {
	Budget     BudgetDTO `json:"budget"`
	Spent      float64   `json:"spent"`
	Percentage float64   `json:"percentage"`
	Exceeded   bool      `json:"exceeded"`
}

type OverviewDTO struct {
	TotalLimit     float64 `json:"totalLimit"`
	TotalSpent     float64 `json:"totalSpent"`
	TotalRemaining float64 `json:"totalRemaining"`
	Percentage     float64 `json:"percentage"`
}

type BudgetHandler struct {
	budgetService BudgetService
}

func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService}
}

func (handler *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new budget")
	w.Header().Set("Content-Type", "application/json")

	var budgetDTO BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&budgetDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	budget := DTOToBudget(budgetDTO)

	created, err := handler.budgetService.Create(r.Context(), budget)
	if err != nil {
		if errors.Is(err, ErrInvalidLimit) || errors.Is(err, ErrMissingCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(BudgetToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	budgets, err := handler.budgetService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	budgetsDTO := make([]BudgetDTO, 0, len(budgets))
	for _, b := range budgets {
		budgetsDTO = append(budgetsDTO, BudgetToDTO(b))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	budgetId := vars["id"]

	var budgetDTO BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&budgetDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if budgetDTO.Id == "" || budgetDTO.Id != budgetId {
		http.Error(w, "Invalid budget id in request body", http.StatusBadRequest)
		return
	}

	budget := DTOToBudget(budgetDTO)
	ok, err := handler.budgetService.Update(r.Context(), budget)
	if err != nil {
		if errors.Is(err, ErrInvalidLimit) || errors.Is(err, ErrMissingCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	budgetId := vars["id"]

	ok, err := handler.budgetService.Delete(r.Context(), budgetId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *BudgetHandler) GetStatuses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	statuses, err := handler.budgetService.Statuses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	statusesDTO := make([]StatusDTO, 0, len(statuses))
	for _, status := range statuses {
		statusesDTO = append(statusesDTO, StatusToDTO(status))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(statusesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	overview, err := handler.budgetService.Overview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	overviewDTO := OverviewDTO{
		TotalLimit:     overview.TotalLimit.Round(2).InexactFloat64(),
		TotalSpent:     overview.TotalSpent.Round(2).InexactFloat64(),
		TotalRemaining: overview.TotalRemaining.Round(2).InexactFloat64(),
		Percentage:     overview.Percentage,
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(overviewDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func BudgetToDTO(budget Budget) BudgetDTO {
	return BudgetDTO{
		Id:       budget.Id,
		Category: budget.Category,
		Limit:    budget.Limit.Round(2).InexactFloat64(),
		ColorTag: budget.ColorTag,
	}
}

func StatusToDTO(status Status) StatusDTO {
	return StatusDTO{
		Budget:     BudgetToDTO(status.Budget),
		Spent:      status.Spent.Round(2).InexactFloat64(),
		Percentage: status.Percentage,
		Exceeded:   status.Exceeded,
	}
}

func DTOToBudget(budgetDTO BudgetDTO) Budget {
	return Budget{
		Id:       budgetDTO.Id,
		Category: budgetDTO.Category,
		Limit:    decimal.NewFromFloat(budgetDTO.Limit),
		ColorTag: budgetDTO.ColorTag,
	}
}
