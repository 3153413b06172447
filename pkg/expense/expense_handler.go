package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	Id          string    `json:"id,omitempty"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ReceiptRef  string    `json:"receiptRef,omitempty"`
}

type ExpenseHandler struct {
	expenseService ExpenseService
}

func NewExpenseHandler(expenseService ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService}
}

func (handler *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Recording new expense")
	w.Header().Set("Content-Type", "application/json")

	var expenseDTO ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&expenseDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	expense := DTOToExpense(expenseDTO)

	created, err := handler.expenseService.Create(r.Context(), expense)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	expenses, err := handler.expenseService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	expensesDTO := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		expensesDTO = append(expensesDTO, ExpenseToDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expensesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	expenseId := vars["id"]

	var expenseDTO ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&expenseDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if expenseDTO.Id == "" || expenseDTO.Id != expenseId {
		http.Error(w, "Invalid expense id in request body", http.StatusBadRequest)
		return
	}

	expense := DTOToExpense(expenseDTO)
	ok, err := handler.expenseService.Update(r.Context(), expense)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expenseDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	expenseId := vars["id"]

	ok, err := handler.expenseService.Delete(r.Context(), expenseId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrMissingCategory) ||
		errors.Is(err, ErrMissingDate)
}

func ExpenseToDTO(expense Expense) ExpenseDTO {
	return ExpenseDTO{
		Id:          expense.Id,
		Amount:      expense.Amount.Round(2).InexactFloat64(),
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date,
		ReceiptRef:  expense.ReceiptRef,
	}
}

func DTOToExpense(expenseDTO ExpenseDTO) Expense {
	return Expense{
		Id:          expenseDTO.Id,
		Amount:      decimal.NewFromFloat(expenseDTO.Amount),
		Category:    expenseDTO.Category,
		Description: expenseDTO.Description,
		Date:        expenseDTO.Date,
		ReceiptRef:  expenseDTO.ReceiptRef,
	}
}
