package clock

import "time"

// Mock is a Clock fixed at a settable instant, for tests.
type Mock struct {
	now time.Time
}

// NewMock creates a Mock pinned at the given time.
func NewMock(now time.Time) *Mock {
	return &Mock{now: now}
}

// Now returns the pinned time.
func (m *Mock) Now() time.Time {
	return m.now
}

// Set moves the pinned time.
func (m *Mock) Set(now time.Time) {
	m.now = now
}

// Advance moves the pinned time forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
