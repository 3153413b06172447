package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kharcha/kharcha/internal/utils"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNegativeAmount     = errors.New("subscription amount must not be negative")
	ErrMissingServiceName = errors.New("subscription service name is required")
	ErrMissingDueDate     = errors.New("subscription next due date is required")
)

// Overview is the subscriptions page summary block.
type Overview struct {
	TotalMonthlyCost decimal.Decimal
	TotalYearlyCost  decimal.Decimal
	ServiceCount     int
	// NextPayment is nil when there are no subscriptions.
	NextPayment *Projection
}

type SubscriptionService interface {
	Create(ctx context.Context, sub Subscription) (Subscription, error)
	GetAll(ctx context.Context) ([]Subscription, error)
	Update(ctx context.Context, sub Subscription) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Projections(ctx context.Context) ([]Projection, error)
	Overview(ctx context.Context) (Overview, error)
}

type SubscriptionServiceImpl struct {
	repo  SubscriptionRepo
	clock utils.Clock
}

func NewSubscriptionServiceImpl(repo SubscriptionRepo, clock utils.Clock) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{repo: repo, clock: clock}
}

func (s *SubscriptionServiceImpl) Create(ctx context.Context, sub Subscription) (Subscription, error) {
	if err := validate(sub); err != nil {
		return Subscription{}, err
	}
	sub.Id = uuid.NewString()

	if err := s.repo.Store(ctx, sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func (s *SubscriptionServiceImpl) GetAll(ctx context.Context) ([]Subscription, error) {
	return s.repo.GetAll(ctx)
}

func (s *SubscriptionServiceImpl) Update(ctx context.Context, sub Subscription) (bool, error) {
	if err := validate(sub); err != nil {
		return false, err
	}
	updated, err := s.repo.Update(ctx, sub)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("subscription not updated, probably because it does not exist (%s)", sub.Id)
		return false, fmt.Errorf("subscription not updated")
	}
	return true, nil
}

func (s *SubscriptionServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("subscription not deleted, probably because it does not exist (%s)", id)
		return false, fmt.Errorf("subscription not deleted")
	}
	return true, nil
}

// Projections projects every stored subscription against the current day.
func (s *SubscriptionServiceImpl) Projections(ctx context.Context) ([]Projection, error) {
	subs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ProjectAll(subs, s.clock.Now())
}

func (s *SubscriptionServiceImpl) Overview(ctx context.Context) (Overview, error) {
	subs, err := s.repo.GetAll(ctx)
	if err != nil {
		return Overview{}, err
	}

	totalMonthly, err := TotalMonthlyCost(subs)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{
		TotalMonthlyCost: totalMonthly,
		TotalYearlyCost:  totalMonthly.Mul(monthsPerYear),
		ServiceCount:     len(subs),
	}

	earliest, err := EarliestUpcoming(subs)
	if errors.Is(err, ErrNoSubscriptions) {
		// An empty list is a valid overview, just without a next payment.
		return overview, nil
	}
	if err != nil {
		return Overview{}, err
	}
	nextPayment, err := Project(earliest, s.clock.Now())
	if err != nil {
		return Overview{}, err
	}
	overview.NextPayment = &nextPayment

	return overview, nil
}

// validate rejects malformed records at the input boundary, including the
// billing cycle so projection can never hit an unknown value from storage.
func validate(sub Subscription) error {
	if sub.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if sub.ServiceName == "" {
		return ErrMissingServiceName
	}
	if sub.NextDueDate.IsZero() {
		return ErrMissingDueDate
	}
	if sub.Cycle != CycleMonthly && sub.Cycle != CycleYearly {
		return fmt.Errorf("%w: %q", ErrUnknownBillingCycle, sub.Cycle)
	}
	return nil
}
