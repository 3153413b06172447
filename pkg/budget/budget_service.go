package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kharcha/kharcha/pkg/expense"
	log "github.com/sirupsen/logrus"
)

var ErrMissingCategory = errors.New("budget category is required")

// ExpenseReader supplies the expense snapshot that budget evaluation runs
// over. Satisfied by expense.ExpenseService.
type ExpenseReader interface {
	GetAll(ctx context.Context) ([]expense.Expense, error)
}

type BudgetService interface {
	Create(ctx context.Context, budget Budget) (Budget, error)
	GetAll(ctx context.Context) ([]Budget, error)
	Update(ctx context.Context, budget Budget) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Statuses(ctx context.Context) ([]Status, error)
	Overview(ctx context.Context) (Overview, error)
}

type BudgetServiceImpl struct {
	repo     BudgetRepo
	expenses ExpenseReader
}

func NewBudgetServiceImpl(repo BudgetRepo, expenses ExpenseReader) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo, expenses: expenses}
}

func (s *BudgetServiceImpl) Create(ctx context.Context, budget Budget) (Budget, error) {
	if err := validate(budget); err != nil {
		return Budget{}, err
	}
	budget.Id = uuid.NewString()

	if err := s.repo.Store(ctx, budget); err != nil {
		return Budget{}, err
	}
	return budget, nil
}

func (s *BudgetServiceImpl) GetAll(ctx context.Context) ([]Budget, error) {
	return s.repo.GetAll(ctx)
}

func (s *BudgetServiceImpl) Update(ctx context.Context, budget Budget) (bool, error) {
	if err := validate(budget); err != nil {
		return false, err
	}
	updated, err := s.repo.Update(ctx, budget)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("budget not updated, probably because it does not exist (%s)", budget.Id)
		return false, fmt.Errorf("budget not updated")
	}
	return true, nil
}

func (s *BudgetServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("budget not deleted, probably because it does not exist (%s)", id)
		return false, fmt.Errorf("budget not deleted")
	}
	return true, nil
}

// Statuses evaluates every stored budget against the current expense snapshot.
func (s *BudgetServiceImpl) Statuses(ctx context.Context) ([]Status, error) {
	budgets, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return EvaluateAll(budgets, expenses)
}

func (s *BudgetServiceImpl) Overview(ctx context.Context) (Overview, error) {
	statuses, err := s.Statuses(ctx)
	if err != nil {
		return Overview{}, err
	}
	return Summarize(statuses), nil
}

// validate guards budget creation so the evaluator's division is always safe.
func validate(budget Budget) error {
	if !budget.Limit.IsPositive() {
		return ErrInvalidLimit
	}
	if budget.Category == "" {
		return ErrMissingCategory
	}
	return nil
}
