package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarID   uuid.UUID `json:"car_id" binding:"required"`
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
}
