package readstore

import (
	"context"
	"errors"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewQuery = `
	SELECT b.id, b.user_id, u.email, b.car_id, c.name,
	       b.start_at, b.end_at, b.total_price_cents, b.status,
	       b.payment_intent_id, b.created_at, b.updated_at
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN cars c ON c.id = b.car_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := bookingViewQuery + ` WHERE b.id = $1`

	var v queries.BookingView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.UserID, &v.UserEmail, &v.CarID, &v.CarName,
		&v.StartAt, &v.EndAt, &v.TotalPriceCents, &v.Status,
		&v.PaymentIntentID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &v, nil
}

const bookingListQuery = `
	SELECT b.id, b.car_id, c.name, b.start_at, b.end_at,
	       b.total_price_cents, b.status, b.created_at
	FROM bookings b
	JOIN cars c ON c.id = b.car_id`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	query := bookingListQuery + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	return scanBookingListRows(rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	query := bookingListQuery + ` ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookingListRows(rows)
}

func scanBookingListRows(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	result := []*queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.CarID, &item.CarName, &item.StartAt, &item.EndAt,
			&item.TotalPriceCents, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}
