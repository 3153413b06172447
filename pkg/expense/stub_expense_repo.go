package expense

import (
	"context"
)

type StubExpenseRepo struct {
	data []Expense
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{data: []Expense{}}
}

func (s *StubExpenseRepo) Store(ctx context.Context, expense Expense) error {
	s.data = append(s.data, expense)
	return nil
}

func (s *StubExpenseRepo) GetAll(ctx context.Context) ([]Expense, error) {
	expenses := make([]Expense, len(s.data))
	copy(expenses, s.data)
	return expenses, nil
}

func (s *StubExpenseRepo) Update(ctx context.Context, expense Expense) (bool, error) {
	for i, e := range s.data {
		if e.Id == expense.Id {
			s.data[i] = expense
			return true, nil
		}
	}
	return false, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, expenseId string) (bool, error) {
	for i, e := range s.data {
		if e.Id == expenseId {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.data = []Expense{}
}
