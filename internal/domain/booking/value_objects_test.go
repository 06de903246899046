//go:build unit

package booking_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func mustPeriod(t *testing.T, start, end time.Time) booking.Period {
	t.Helper()
	p, err := booking.NewPeriod(start, end)
	require.NoError(t, err)
	return p
}

func TestNewPeriod(t *testing.T) {
	t.Run("start before end is valid", func(t *testing.T) {
		p, err := booking.NewPeriod(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, p.Start())
		assert.Equal(t, base.Add(time.Hour), p.End())
	})

	t.Run("start equal to end is invalid", func(t *testing.T) {
		_, err := booking.NewPeriod(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidPeriod)
	})

	t.Run("start after end is invalid", func(t *testing.T) {
		_, err := booking.NewPeriod(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, booking.ErrInvalidPeriod)
	})
}

func TestPeriodOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a        [2]time.Duration
		b        [2]time.Duration
		overlaps bool
	}{
		{"identical periods", [2]time.Duration{0, 48 * time.Hour}, [2]time.Duration{0, 48 * time.Hour}, true},
		{"partial overlap at tail", [2]time.Duration{0, 48 * time.Hour}, [2]time.Duration{24 * time.Hour, 72 * time.Hour}, true},
		{"contained period", [2]time.Duration{0, 72 * time.Hour}, [2]time.Duration{24 * time.Hour, 48 * time.Hour}, true},
		{"containing period", [2]time.Duration{24 * time.Hour, 48 * time.Hour}, [2]time.Duration{0, 72 * time.Hour}, true},
		{"back-to-back: b starts exactly when a ends", [2]time.Duration{0, 48 * time.Hour}, [2]time.Duration{48 * time.Hour, 96 * time.Hour}, false},
		{"back-to-back: a starts exactly when b ends", [2]time.Duration{48 * time.Hour, 96 * time.Hour}, [2]time.Duration{0, 48 * time.Hour}, false},
		{"disjoint with gap", [2]time.Duration{0, 24 * time.Hour}, [2]time.Duration{48 * time.Hour, 72 * time.Hour}, false},
		{"one second of overlap", [2]time.Duration{0, 24*time.Hour + time.Second}, [2]time.Duration{24 * time.Hour, 48 * time.Hour}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustPeriod(t, base.Add(tc.a[0]), base.Add(tc.a[1]))
			b := mustPeriod(t, base.Add(tc.b[0]), base.Add(tc.b[1]))

			assert.Equal(t, tc.overlaps, a.Overlaps(b))
			// Overlap is symmetric
			assert.Equal(t, tc.overlaps, b.Overlaps(a))
		})
	}
}

func TestPeriodContains(t *testing.T) {
	p := mustPeriod(t, base, base.Add(48*time.Hour))

	assert.True(t, p.Contains(base), "start instant is inside")
	assert.True(t, p.Contains(base.Add(24*time.Hour)))
	assert.False(t, p.Contains(base.Add(48*time.Hour)), "end instant is exclusive")
	assert.False(t, p.Contains(base.Add(-time.Second)))
}

func TestPeriodDays(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		days     int64
	}{
		{"4 hours bills one day", 4 * time.Hour, 1},
		{"exactly 24 hours is one day", 24 * time.Hour, 1},
		{"25 hours still bills one day", 25 * time.Hour, 1},
		{"exactly 48 hours is two days", 48 * time.Hour, 2},
		{"one week", 7 * 24 * time.Hour, 7},
		{"one minute bills one day", time.Minute, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPeriod(t, base, base.Add(tc.duration))
			assert.Equal(t, tc.days, p.Days())
		})
	}
}

func TestPriceFor(t *testing.T) {
	t.Run("price is days times daily rate", func(t *testing.T) {
		p := mustPeriod(t, base, base.Add(72*time.Hour))

		price, err := booking.PriceFor(p, 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), price.Cents())
	})

	t.Run("sub-day rental costs one full day", func(t *testing.T) {
		p := mustPeriod(t, base, base.Add(4*time.Hour))

		price, err := booking.PriceFor(p, 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), price.Cents())
	})

	t.Run("non-positive rate is rejected", func(t *testing.T) {
		p := mustPeriod(t, base, base.Add(24*time.Hour))

		_, err := booking.PriceFor(p, 0)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)

		_, err = booking.PriceFor(p, -100)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestMoney(t *testing.T) {
	m, err := booking.NewMoney(12345)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), m.Cents())
	assert.InEpsilon(t, 123.45, m.Dollars(), 0.0001)

	_, err = booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativePrice)
}
