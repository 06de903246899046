package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Location       string    `json:"location"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	Status         string    `json:"status"`
	ReviewCount    int64     `json:"review_count"`
	AverageRating  float64   `json:"average_rating"`
	CreatedAt      time.Time `json:"created_at"`
}

type CarListResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Location       string    `json:"location"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	Status         string    `json:"status"`
}

func FromCarView(v *queries.CarView) *CarResponse {
	return &CarResponse{
		ID:             v.ID,
		OwnerID:        v.OwnerID,
		Name:           v.Name,
		Make:           v.Make,
		Model:          v.Model,
		Year:           v.Year,
		Location:       v.Location,
		DailyRateCents: v.DailyRateCents,
		Status:         v.Status,
		ReviewCount:    v.ReviewCount,
		AverageRating:  v.AverageRating,
		CreatedAt:      v.CreatedAt,
	}
}

func FromCarListItem(v *queries.CarListItem) *CarListResponse {
	return &CarListResponse{
		ID:             v.ID,
		Name:           v.Name,
		Make:           v.Make,
		Model:          v.Model,
		Year:           v.Year,
		Location:       v.Location,
		DailyRateCents: v.DailyRateCents,
		Status:         v.Status,
	}
}
