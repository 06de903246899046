package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	CarID     uuid.UUID `json:"car_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CarRatingStatsResponse struct {
	CarID         uuid.UUID `json:"car_id"`
	ReviewCount   int64     `json:"review_count"`
	AverageRating float64   `json:"average_rating"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		UserEmail: v.UserEmail,
		CarID:     v.CarID,
		BookingID: v.BookingID,
		Rating:    v.Rating,
		Title:     v.Title,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt,
	}
}

func FromCarRatingStats(v *queries.CarRatingStatsView) *CarRatingStatsResponse {
	return &CarRatingStatsResponse{
		CarID:         v.CarID,
		ReviewCount:   v.ReviewCount,
		AverageRating: v.AverageRating,
	}
}
