// Package clock is the service's notion of "now". In debug builds the clock
// can be shifted forward to exercise day-based bookkeeping (streaks, daily
// spin limits) without waiting for real days to pass.
package clock

import (
	"fmt"
	"sync/atomic"
	"time"
)

const DayLayout = "2006-01-02"

type Clock struct {
	offset atomic.Int64
	now    func() time.Time
}

func New() *Clock {
	return &Clock{now: time.Now}
}

// NewFixed returns a clock pinned to t. Used by tests.
func NewFixed(t time.Time) *Clock {
	return &Clock{now: func() time.Time { return t }}
}

func (c *Clock) Now() time.Time {
	return c.now().Add(time.Duration(c.offset.Load())).UTC()
}

// Today returns the current UTC calendar day as YYYY-MM-DD.
func (c *Clock) Today() string {
	return c.Now().Format(DayLayout)
}

func (c *Clock) Advance(d time.Duration) time.Duration {
	return time.Duration(c.offset.Add(int64(d)))
}

func (c *Clock) AdvanceDays(days int) time.Duration {
	return c.Advance(time.Duration(days) * 24 * time.Hour)
}

func (c *Clock) Reset() {
	c.offset.Store(0)
}

func (c *Clock) Offset() time.Duration {
	return time.Duration(c.offset.Load())
}

// DayDiff returns the number of calendar days from `from` to `to`.
func DayDiff(from, to string) (int, error) {
	f, err := time.Parse(DayLayout, from)
	if err != nil {
		return 0, fmt.Errorf("parse day %q: %w", from, err)
	}
	t, err := time.Parse(DayLayout, to)
	if err != nil {
		return 0, fmt.Errorf("parse day %q: %w", to, err)
	}
	return int(t.Sub(f).Hours() / 24), nil
}
