package repository

import (
	"context"
	"time"

	"car-rental-api/internal/domain/booking"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, user_id, car_id, start_at, end_at, total_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.UserID(), b.CarID(),
		b.Period().Start(), b.Period().End(),
		b.Price().Cents(), b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SetPaymentIntent(ctx context.Context, tx db.DBTX, id uuid.UUID, intentID string) error {
	const query = `UPDATE bookings SET payment_intent_id = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, intentID)
	if err != nil {
		return infra.WrapRepoErr("failed to set payment intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockCar takes a transaction-scoped advisory lock keyed by the car id. All
// booking creation for one car funnels through this lock, so the conflict
// check and the insert behave as a single atomic step. Released on
// commit/rollback.
func (r *BookingRepository) LockCar(ctx context.Context, tx db.DBTX, carID uuid.UUID) error {
	const query = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

	if _, err := tx.Exec(ctx, query, carID); err != nil {
		return infra.WrapRepoErr("failed to acquire car lock", err)
	}
	return nil
}

// HasActiveConflict checks [start, end) against pending/confirmed bookings
// under half-open semantics: back-to-back periods do not overlap.
func (r *BookingRepository) HasActiveConflict(ctx context.Context, tx db.DBTX, carID uuid.UUID, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE car_id = $1
			  AND status IN ('pending', 'confirmed')
			  AND NOT (end_at <= $2 OR start_at >= $3)
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, carID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking conflict", err)
	}
	return exists, nil
}

func (r *BookingRepository) HasActiveAt(ctx context.Context, tx db.DBTX, carID uuid.UUID, at time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE car_id = $1
			  AND status IN ('pending', 'confirmed')
			  AND start_at <= $2 AND end_at > $2
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, carID, at).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active booking", err)
	}
	return exists, nil
}
