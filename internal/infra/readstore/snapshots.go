package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// SnapshotReadStore serves the command side's validation reads. Snapshots are
// narrower than views: no joins, just the aggregate's own columns.
type SnapshotReadStore struct {
	db db.DBTX
}

func NewSnapshotReadStore(dbtx db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: dbtx}
}

const bookingSnapshotColumns = `id, user_id, car_id, start_at, end_at, total_price_cents, status, payment_intent_id`

func (r *SnapshotReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	query := `SELECT ` + bookingSnapshotColumns + ` FROM bookings WHERE id = $1`
	return r.scanBookingSnapshot(ctx, query, id)
}

func (r *SnapshotReadStore) BookingByPaymentIntent(ctx context.Context, intentID string) (*shared.BookingSnapshot, error) {
	query := `SELECT ` + bookingSnapshotColumns + ` FROM bookings WHERE payment_intent_id = $1`
	return r.scanBookingSnapshot(ctx, query, intentID)
}

func (r *SnapshotReadStore) scanBookingSnapshot(ctx context.Context, query string, arg any) (*shared.BookingSnapshot, error) {
	var s shared.BookingSnapshot
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.UserID, &s.CarID, &s.StartAt, &s.EndAt,
		&s.PriceCents, &s.Status, &s.PaymentIntentID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking snapshot", err)
	}
	return &s, nil
}

func (r *SnapshotReadStore) CarByID(ctx context.Context, id uuid.UUID) (*shared.CarSnapshot, error) {
	const query = `
		SELECT id, owner_id, name, make, model, year, location, daily_rate_cents, status, is_active
		FROM cars
		WHERE id = $1`

	var s shared.CarSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Make, &s.Model, &s.Year,
		&s.Location, &s.DailyRateCents, &s.Status, &s.IsActive,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get car snapshot", err)
	}
	return &s, nil
}

func (r *SnapshotReadStore) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`

	var s shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, email).Scan(&s.ID, &s.Email, &s.Role, &s.IsActive, &s.PasswordHash)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user snapshot", err)
	}
	return &s, nil
}
