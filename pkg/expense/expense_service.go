package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kharcha/kharcha/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNegativeAmount  = errors.New("expense amount must not be negative")
	ErrMissingCategory = errors.New("expense category is required")
	ErrMissingDate     = errors.New("expense date is required")
)

type ExpenseService interface {
	Create(ctx context.Context, expense Expense) (Expense, error)
	GetAll(ctx context.Context) ([]Expense, error)
	Update(ctx context.Context, expense Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ExpenseServiceImpl struct {
	repo ExpenseRepo
	bus  *event_bus.EventBus
}

func NewExpenseServiceImpl(repo ExpenseRepo, bus *event_bus.EventBus) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{repo: repo, bus: bus}
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	if err := validate(expense); err != nil {
		return Expense{}, err
	}
	expense.Id = uuid.NewString()

	if err := s.repo.Store(ctx, expense); err != nil {
		return Expense{}, err
	}

	event := event_bus.NewEvent(ctx, event_bus.ExpenseCreatedEvent, event_bus.ExpenseCreated{
		Id:          expense.Id,
		Amount:      expense.Amount,
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date,
	})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("expense %s stored but event delivery failed: %v", expense.Id, err)
	}

	return expense, nil
}

func (s *ExpenseServiceImpl) GetAll(ctx context.Context) ([]Expense, error) {
	return s.repo.GetAll(ctx)
}

func (s *ExpenseServiceImpl) Update(ctx context.Context, expense Expense) (bool, error) {
	if err := validate(expense); err != nil {
		return false, err
	}
	updated, err := s.repo.Update(ctx, expense)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("expense not updated, probably because it does not exist (%s)", expense.Id)
		return false, fmt.Errorf("expense not updated")
	}
	return true, nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%s)", id)
		return false, fmt.Errorf("expense not deleted")
	}

	event := event_bus.NewEvent(ctx, event_bus.ExpenseDeletedEvent, event_bus.ExpenseDeleted{Id: id})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("expense %s deleted but event delivery failed: %v", id, err)
	}
	return true, nil
}

// validate rejects malformed records at the input boundary so aggregation
// never sees them.
func validate(expense Expense) error {
	if expense.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if expense.Category == "" {
		return ErrMissingCategory
	}
	if expense.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}
