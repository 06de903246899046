package booking

import (
	"fmt"
	"time"
)

// Period is a half-open rental interval [start, end). The end instant is
// exclusive, so a booking ending at T and another starting at T do not
// overlap.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Overlaps uses half-open semantics: two periods overlap iff neither ends
// before (or exactly when) the other begins.
func (p Period) Overlaps(other Period) bool {
	return !(p.end.Compare(other.start) <= 0 || p.start.Compare(other.end) >= 0)
}

// Contains reports whether the instant t falls inside [start, end).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

// Days is the number of billable rental days: whole 24-hour blocks,
// with a minimum of one. A 4-hour rental still costs a full day.
func (p Period) Days() int64 {
	days := int64(p.Duration() / (24 * time.Hour))
	if days < 1 {
		return 1
	}
	return days
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}

// Money is an amount in cents. Storing cents keeps the fixed two-decimal
// precision exact without floating point.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

// PriceFor computes the total rental price: billable days times the car's
// daily rate. The rate is fixed at creation time and never recomputed.
func PriceFor(period Period, dailyRateCents int64) (Money, error) {
	if dailyRateCents <= 0 {
		return Money{}, ErrNegativePrice
	}
	return NewMoney(period.Days() * dailyRateCents)
}
