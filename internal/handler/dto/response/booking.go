package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserEmail       string    `json:"user_email"`
	CarID           uuid.UUID `json:"car_id"`
	CarName         string    `json:"car_name"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	PaymentIntentID *string   `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	CarID           uuid.UUID `json:"car_id"`
	CarName         string    `json:"car_name"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		UserEmail:       v.UserEmail,
		CarID:           v.CarID,
		CarName:         v.CarName,
		StartAt:         v.StartAt,
		EndAt:           v.EndAt,
		TotalPriceCents: v.TotalPriceCents,
		Status:          v.Status,
		PaymentIntentID: v.PaymentIntentID,
		CreatedAt:       v.CreatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              v.ID,
		CarID:           v.CarID,
		CarName:         v.CarName,
		StartAt:         v.StartAt,
		EndAt:           v.EndAt,
		TotalPriceCents: v.TotalPriceCents,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
	}
}
