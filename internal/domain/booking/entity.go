package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod     = errors.New("start time must be before end time")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrNegativePrice     = errors.New("price must be positive")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNotPending        = errors.New("booking is not in pending state")
)

// Booking is the aggregate root of the rental lifecycle. Identity and total
// price are immutable once created; only the status and the payment intent
// reference may change, and status changes go through the transition table.
type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	carID           uuid.UUID
	period          Period
	price           Money
	status          Status
	paymentIntentID *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking creates a pending booking priced off the car's daily rate.
func NewBooking(userID, carID uuid.UUID, period Period, dailyRateCents int64) (*Booking, error) {
	price, err := PriceFor(period, dailyRateCents)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:     uuid.New(),
		userID: userID,
		carID:  carID,
		period: period,
		price:  price,
		status: StatusPending,
	}, nil
}

func ReconstructBooking(
	id, userID, carID uuid.UUID,
	period Period,
	price Money,
	status Status,
	paymentIntentID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		carID:           carID,
		period:          period,
		price:           price,
		status:          status,
		paymentIntentID: paymentIntentID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) transition(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// Confirm moves a pending booking to confirmed. Used on payment success.
func (b *Booking) Confirm() error {
	return b.transition(StatusConfirmed)
}

func (b *Booking) Cancel() error {
	return b.transition(StatusCancelled)
}

func (b *Booking) Complete() error {
	return b.transition(StatusCompleted)
}

func (b *Booking) Refund() error {
	return b.transition(StatusRefunded)
}

// AttachPaymentIntent records the gateway's intent id. Only pending bookings
// can take a payment. A repeated call overwrites the stored reference; there
// is deliberately no idempotency guard against duplicate intents at the
// gateway.
func (b *Booking) AttachPaymentIntent(intentID string) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.paymentIntentID = &intentID
	return nil
}

// ConflictsWith reports whether this booking blocks other from being created:
// both target the same car, this one is still active, and the periods overlap.
func (b *Booking) ConflictsWith(carID uuid.UUID, period Period) bool {
	return b.carID == carID && b.status.IsActive() && b.period.Overlaps(period)
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) CarID() uuid.UUID         { return b.carID }
func (b *Booking) Period() Period           { return b.period }
func (b *Booking) Price() Money             { return b.price }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) PaymentIntentID() *string { return b.paymentIntentID }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
