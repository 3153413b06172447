package subscription

import (
	"context"
)

type StubSubscriptionRepo struct {
	data []Subscription
}

func NewStubSubscriptionRepo() *StubSubscriptionRepo {
	return &StubSubscriptionRepo{data: []Subscription{}}
}

func (s *StubSubscriptionRepo) Store(ctx context.Context, sub Subscription) error {
	s.data = append(s.data, sub)
	return nil
}

func (s *StubSubscriptionRepo) GetAll(ctx context.Context) ([]Subscription, error) {
	subs := make([]Subscription, len(s.data))
	copy(subs, s.data)
	return subs, nil
}

func (s *StubSubscriptionRepo) Update(ctx context.Context, sub Subscription) (bool, error) {
	for i, existing := range s.data {
		if existing.Id == sub.Id {
			s.data[i] = sub
			return true, nil
		}
	}
	return false, nil
}

func (s *StubSubscriptionRepo) Delete(ctx context.Context, subscriptionId string) (bool, error) {
	for i, existing := range s.data {
		if existing.Id == subscriptionId {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubSubscriptionRepo) Cleanup() {
	s.data = []Subscription{}
}
