package report

import (
	"context"

	"github.com/kharcha/kharcha/pkg/budget"
	"github.com/kharcha/kharcha/pkg/expense"
	"github.com/kharcha/kharcha/pkg/subscription"
)

type stubExpenseReader struct {
	expenses []expense.Expense
	err      error
}

func (s *stubExpenseReader) GetAll(ctx context.Context) ([]expense.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.expenses, nil
}

type stubBudgetStatusReader struct {
	statuses []budget.Status
	err      error
}

func (s *stubBudgetStatusReader) Statuses(ctx context.Context) ([]budget.Status, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.statuses, nil
}

type stubSubscriptionOverviewReader struct {
	overview subscription.Overview
	err      error
}

func (s *stubSubscriptionOverviewReader) Overview(ctx context.Context) (subscription.Overview, error) {
	if s.err != nil {
		return subscription.Overview{}, s.err
	}
	return s.overview, nil
}
