package budget

import (
	"context"
)

type StubBudgetRepo struct {
	data []Budget
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: []Budget{}}
}

func (s *StubBudgetRepo) Store(ctx context.Context, budget Budget) error {
	s.data = append(s.data, budget)
	return nil
}

func (s *StubBudgetRepo) GetAll(ctx context.Context) ([]Budget, error) {
	budgets := make([]Budget, len(s.data))
	copy(budgets, s.data)
	return budgets, nil
}

func (s *StubBudgetRepo) Update(ctx context.Context, budget Budget) (bool, error) {
	for i, b := range s.data {
		if b.Id == budget.Id {
			s.data[i] = budget
			return true, nil
		}
	}
	return false, nil
}

func (s *StubBudgetRepo) Delete(ctx context.Context, budgetId string) (bool, error) {
	for i, b := range s.data {
		if b.Id == budgetId {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.data = []Budget{}
}
