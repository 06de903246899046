package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewQuery = `
	SELECT r.id, r.user_id, u.email, r.car_id, r.booking_id,
	       r.rating, r.title, r.comment, r.created_at
	FROM reviews r
	JOIN users u ON u.id = r.user_id`

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	query := reviewViewQuery + ` WHERE r.id = $1`

	var v queries.ReviewView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.UserID, &v.UserEmail, &v.CarID, &v.BookingID,
		&v.Rating, &v.Title, &v.Comment, &v.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return &v, nil
}

func (r *ReviewReadStore) FindByCarID(ctx context.Context, carID uuid.UUID) ([]*queries.ReviewView, error) {
	query := reviewViewQuery + ` WHERE r.car_id = $1 ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by car", err)
	}
	defer rows.Close()

	result := []*queries.ReviewView{}
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.UserEmail, &v.CarID, &v.BookingID,
			&v.Rating, &v.Title, &v.Comment, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return result, nil
}

func (r *ReviewReadStore) CarRatingStats(ctx context.Context, carID uuid.UUID) (*queries.CarRatingStatsView, error) {
	const query = `
		SELECT car_id, review_count, average_rating
		FROM car_rating_stats
		WHERE car_id = $1`

	var v queries.CarRatingStatsView
	err := r.db.QueryRow(ctx, query, carID).Scan(&v.CarID, &v.ReviewCount, &v.AverageRating)
	if err != nil {
		if isNoRows(err) {
			// Zero stats when the car has no reviews yet.
			return &queries.CarRatingStatsView{CarID: carID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get car rating stats", err)
	}
	return &v, nil
}
