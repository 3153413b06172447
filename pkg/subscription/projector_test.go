package subscription

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestMonthlyEquivalent(t *testing.T) {
	t.Run("monthly amount passes through", func(t *testing.T) {
		monthly, err := MonthlyEquivalent(Subscription{Amount: decimal.NewFromInt(100), Cycle: CycleMonthly})

		assert.NoError(t, err)
		assert.True(t, monthly.Equal(decimal.NewFromInt(100)), "got %s", monthly)
	})

	t.Run("yearly amount is divided by 12", func(t *testing.T) {
		monthly, err := MonthlyEquivalent(Subscription{Amount: decimal.NewFromInt(1200), Cycle: CycleYearly})

		assert.NoError(t, err)
		assert.True(t, monthly.Equal(decimal.NewFromInt(100)), "got %s", monthly)
	})

	t.Run("unknown cycle fails", func(t *testing.T) {
		_, err := MonthlyEquivalent(Subscription{Amount: decimal.NewFromInt(100), Cycle: "Weekly"})

		assert.ErrorIs(t, err, ErrUnknownBillingCycle)
	})
}

func TestProject(t *testing.T) {
	tests := []struct {
		name        string
		nextDueDate time.Time
		wantDays    int
		wantUrgent  bool
	}{
		{name: "due in two days is urgent", nextDueDate: today.AddDate(0, 0, 2), wantDays: 2, wantUrgent: true},
		{name: "due in exactly three days is urgent", nextDueDate: today.AddDate(0, 0, 3), wantDays: 3, wantUrgent: true},
		{name: "due in four days is not urgent", nextDueDate: today.AddDate(0, 0, 4), wantDays: 4, wantUrgent: false},
		{name: "due today is urgent", nextDueDate: today, wantDays: 0, wantUrgent: true},
		{name: "overdue is urgent and days stay negative", nextDueDate: today.AddDate(0, 0, -1), wantDays: -1, wantUrgent: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Subscription{ServiceName: "Netflix", Amount: decimal.NewFromInt(499), Cycle: CycleMonthly, NextDueDate: tt.nextDueDate}

			projection, err := Project(sub, today)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDays, projection.DaysUntilDue)
			assert.Equal(t, tt.wantUrgent, projection.Urgent)
		})
	}
}

func TestProject_CrossCycleNormalization(t *testing.T) {
	yearly := Subscription{Amount: decimal.NewFromInt(1200), Cycle: CycleYearly, NextDueDate: today}
	monthly := Subscription{Amount: decimal.NewFromInt(100), Cycle: CycleMonthly, NextDueDate: today}

	yearlyProjection, err := Project(yearly, today)
	assert.NoError(t, err)
	monthlyProjection, err := Project(monthly, today)
	assert.NoError(t, err)

	assert.True(t, yearlyProjection.MonthlyEquivalent.Equal(monthlyProjection.MonthlyEquivalent))
}

func TestEarliestUpcoming(t *testing.T) {
	t.Run("smallest due date wins, first occurrence on ties", func(t *testing.T) {
		subs := []Subscription{
			{Id: "s1", NextDueDate: today.AddDate(0, 0, 5)},
			{Id: "s2", NextDueDate: today.AddDate(0, 0, 1)},
			{Id: "s3", NextDueDate: today.AddDate(0, 0, 1)},
		}

		earliest, err := EarliestUpcoming(subs)

		assert.NoError(t, err)
		assert.Equal(t, "s2", earliest.Id)
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := EarliestUpcoming(nil)

		assert.ErrorIs(t, err, ErrNoSubscriptions)
	})
}

func TestTotalMonthlyCost(t *testing.T) {
	subs := []Subscription{
		{Amount: decimal.NewFromInt(499), Cycle: CycleMonthly},
		{Amount: decimal.NewFromInt(1200), Cycle: CycleYearly},
	}

	t.Run("sums monthly equivalents", func(t *testing.T) {
		total, err := TotalMonthlyCost(subs)

		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(599)), "got %s", total)
	})

	t.Run("is invariant under reordering", func(t *testing.T) {
		reversed := []Subscription{subs[1], subs[0]}

		total, err := TotalMonthlyCost(subs)
		assert.NoError(t, err)
		reversedTotal, err := TotalMonthlyCost(reversed)
		assert.NoError(t, err)

		assert.True(t, total.Equal(reversedTotal))
	})

	t.Run("empty input costs zero", func(t *testing.T) {
		total, err := TotalMonthlyCost(nil)

		assert.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("unknown cycle fails", func(t *testing.T) {
		_, err := TotalMonthlyCost([]Subscription{{Amount: decimal.NewFromInt(10), Cycle: "Daily"}})

		assert.ErrorIs(t, err, ErrUnknownBillingCycle)
	})
}

func TestTotalYearlyCost(t *testing.T) {
	subs := []Subscription{
		{Amount: decimal.NewFromInt(100), Cycle: CycleMonthly},
	}

	total, err := TotalYearlyCost(subs)

	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(1200)), "got %s", total)
}
