package repository

import (
	"context"

	"car-rental-api/internal/domain/review"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() shared.ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, booking_id, user_id, car_id, rating, title, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rev.ID(), rev.BookingID(), rev.UserID(), rev.CarID(),
		rev.Rating().Value(), rev.Title().String(), rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`

	var exists bool
	if err := tx.QueryRow(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
