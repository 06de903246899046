//go:build unit

package booking_test

import (
	"testing"

	"car-rental-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []booking.Status{
	booking.StatusPending,
	booking.StatusConfirmed,
	booking.StatusCancelled,
	booking.StatusRefunded,
	booking.StatusCompleted,
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:   {booking.StatusConfirmed, booking.StatusCancelled},
		booking.StatusConfirmed: {booking.StatusCompleted, booking.StatusCancelled, booking.StatusRefunded},
		booking.StatusCancelled: {},
		booking.StatusRefunded:  {},
		booking.StatusCompleted: {},
	}

	for from, targets := range allowed {
		allowedSet := make(map[booking.Status]bool, len(targets))
		for _, to := range targets {
			allowedSet[to] = true
		}
		for _, to := range allStatuses {
			assert.Equal(t, allowedSet[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	// Terminal states must have no exits at all
	for _, s := range allStatuses {
		if !s.IsTerminal() {
			continue
		}
		for _, to := range allStatuses {
			assert.False(t, s.CanTransitionTo(to), "terminal %s must not allow %s", s, to)
		}
	}

	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, booking.StatusPending.IsActive())
	assert.True(t, booking.StatusConfirmed.IsActive())
	assert.False(t, booking.StatusCancelled.IsActive())
	assert.False(t, booking.StatusRefunded.IsActive())
	assert.False(t, booking.StatusCompleted.IsActive())
}

func TestNewStatus(t *testing.T) {
	for _, s := range allStatuses {
		parsed, err := booking.NewStatus(s.String())
		assert.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := booking.NewStatus("shipped")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}
