package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(dayOfMonth int) time.Time {
	return time.Date(2024, time.March, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleExpenses() []Expense {
	return []Expense{
		{Id: "e1", Amount: amount("50"), Category: "Food", Date: day(10)},
		{Id: "e2", Amount: amount("30"), Category: "Food", Date: day(11)},
		{Id: "e3", Amount: amount("20"), Category: "Transport", Date: day(12)},
	}
}

func TestTotalForCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "sums matching categories", category: "Food", want: "80"},
		{name: "single match", category: "Transport", want: "20"},
		{name: "no match returns zero", category: "Entertainment", want: "0"},
		{name: "matching is case-sensitive", category: "food", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalForCategory(sampleExpenses(), tt.category)
			assert.True(t, got.Equal(amount(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestTotalForCategory_PreservesPrecision(t *testing.T) {
	expenses := []Expense{
		{Amount: amount("0.1"), Category: "Food", Date: day(1)},
		{Amount: amount("0.2"), Category: "Food", Date: day(2)},
	}

	got := TotalForCategory(expenses, "Food")

	// 0.1 + 0.2 must be exactly 0.3, not a float approximation.
	assert.True(t, got.Equal(amount("0.3")), "got %s", got)
}

func TestTotalsByCategory(t *testing.T) {
	t.Run("one entry per category in first-seen order", func(t *testing.T) {
		totals := TotalsByCategory(sampleExpenses())

		assert.Len(t, totals, 2)
		assert.Equal(t, "Food", totals[0].Category)
		assert.True(t, totals[0].Total.Equal(amount("80")))
		assert.Equal(t, "Transport", totals[1].Category)
		assert.True(t, totals[1].Total.Equal(amount("20")))
	})

	t.Run("empty input yields no entries", func(t *testing.T) {
		assert.Empty(t, TotalsByCategory(nil))
	})
}

func TestTotalInRange(t *testing.T) {
	expenses := sampleExpenses()

	t.Run("range bounds are inclusive", func(t *testing.T) {
		got := TotalInRange(expenses, day(10), day(12))
		assert.True(t, got.Equal(amount("100")), "got %s", got)
	})

	t.Run("excludes days outside the range", func(t *testing.T) {
		got := TotalInRange(expenses, day(11), day(11))
		assert.True(t, got.Equal(amount("30")), "got %s", got)
	})

	t.Run("time of day does not affect membership", func(t *testing.T) {
		lateExpense := []Expense{{Amount: amount("5"), Category: "Food", Date: day(10).Add(23 * time.Hour)}}
		got := TotalInRange(lateExpense, day(10), day(10))
		assert.True(t, got.Equal(amount("5")), "got %s", got)
	})
}

func TestTotalInMonth(t *testing.T) {
	expenses := append(sampleExpenses(), Expense{
		Id: "e4", Amount: amount("99"), Category: "Food",
		Date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
	})

	got := TotalInMonth(expenses, time.March, 2024)

	assert.True(t, got.Equal(amount("100")), "got %s", got)
}

func TestTotalAmount(t *testing.T) {
	assert.True(t, TotalAmount(sampleExpenses()).Equal(amount("100")))
	assert.True(t, TotalAmount(nil).Equal(decimal.Zero))
}
