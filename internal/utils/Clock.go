package utils

import "time"

// Clock abstracts the wall clock so derived metrics stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock. It is the only Clock the running
// application uses.
type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock pins "now" to a fixed instant. SetNow moves it, so a test can walk
// the calendar forward without re-wiring the service under test.
type MockClock struct {
	FixedNow time.Time
}

func NewMockClock(fixedNow time.Time) *MockClock {
	return &MockClock{FixedNow: fixedNow}
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}
