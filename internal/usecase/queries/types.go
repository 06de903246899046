package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type BookingView struct {
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
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	CarID           uuid.UUID `json:"car_id"`
	CarName         string    `json:"car_name"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type CarView struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Location       string    `json:"location"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	Status         string    `json:"status"`
	IsActive       bool      `json:"is_active"`
	ReviewCount    int64     `json:"review_count"`
	AverageRating  float64   `json:"average_rating"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CarListItem struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Location       string    `json:"location"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	Status         string    `json:"status"`
}

// CarSearchFilters is translated into a dynamic WHERE clause by the read
// store; zero values mean "no filter".
type CarSearchFilters struct {
	Location       string
	MinDailyCents  int64
	MaxDailyCents  int64
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	CarID     uuid.UUID `json:"car_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CarRatingStatsView struct {
	CarID         uuid.UUID `json:"car_id"`
	ReviewCount   int64     `json:"review_count"`
	AverageRating float64   `json:"average_rating"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Read-store ports implemented by internal/infra/readstore.

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
}

type CarReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	Search(ctx context.Context, filters CarSearchFilters) ([]*CarListItem, error)
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByCarID(ctx context.Context, carID uuid.UUID) ([]*ReviewView, error)
	CarRatingStats(ctx context.Context, carID uuid.UUID) (*CarRatingStatsView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}
