package repository

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatingStatsRepository struct{}

func NewRatingStatsRepository() shared.RatingStatsRepository {
	return &RatingStatsRepository{}
}

// RecalcCarRatingStats rebuilds the aggregate row from the reviews table.
// Runs in the same transaction as the review write.
func (r *RatingStatsRepository) RecalcCarRatingStats(ctx context.Context, tx db.DBTX, carID uuid.UUID) error {
	const query = `
		INSERT INTO car_rating_stats (car_id, review_count, average_rating, updated_at)
		SELECT $1, COUNT(*), COALESCE(AVG(rating), 0), now()
		FROM reviews
		WHERE car_id = $1
		ON CONFLICT (car_id) DO UPDATE
		SET review_count = EXCLUDED.review_count,
		    average_rating = EXCLUDED.average_rating,
		    updated_at = EXCLUDED.updated_at`

	if _, err := tx.Exec(ctx, query, carID); err != nil {
		return infra.WrapRepoErr("failed to recalc car rating stats", err)
	}
	return nil
}
