package shared

import (
	"context"
	"time"

	"car-rental-api/internal/domain/booking"
	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/review"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-committed transaction for write operations with
	// retry on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Cars() CarRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal snapshot reads the command side needs for
// validation; full views live on the query side.
type CommandReads interface {
	CarByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	BookingByPaymentIntent(ctx context.Context, intentID string) (*BookingSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type BookingSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CarID           uuid.UUID
	StartAt         time.Time
	EndAt           time.Time
	PriceCents      int64
	Status          string
	PaymentIntentID *string
}

// ToDomain rebuilds the aggregate so status transitions run through the
// domain transition table.
func (s *BookingSnapshot) ToDomain() (*booking.Booking, error) {
	period, err := booking.NewPeriod(s.StartAt, s.EndAt)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(s.PriceCents)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(s.ID, s.UserID, s.CarID, period, price, status, s.PaymentIntentID, time.Time{}, time.Time{}), nil
}

type CarSnapshot struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Make           string
	Model          string
	Year           int
	Location       string
	DailyRateCents int64
	Status         string
	IsActive       bool
}

func (s *CarSnapshot) ToDomain() (*car.Car, error) {
	status, err := car.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	return car.ReconstructCar(s.ID, s.OwnerID, s.Name, s.Make, s.Model, s.Year, s.Location, s.DailyRateCents, status, s.IsActive, time.Time{}, time.Time{}), nil
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Role         string
	IsActive     bool
	PasswordHash string
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	SetPaymentIntent(ctx context.Context, tx db.DBTX, id uuid.UUID, intentID string) error
	// LockCar serializes booking creation per car via a transaction-scoped
	// advisory lock, closing the check-then-insert race window.
	LockCar(ctx context.Context, tx db.DBTX, carID uuid.UUID) error
	// HasActiveConflict reports whether any pending/confirmed booking of the
	// car overlaps [start, end) under half-open semantics.
	HasActiveConflict(ctx context.Context, tx db.DBTX, carID uuid.UUID, start, end time.Time) (bool, error)
	// HasActiveAt reports whether any pending/confirmed booking of the car
	// covers the instant at.
	HasActiveAt(ctx context.Context, tx db.DBTX, carID uuid.UUID, at time.Time) (bool, error)
}

type CarRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *car.Car) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status car.Status) error
	UpdateDetails(ctx context.Context, tx db.DBTX, c *car.Car) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	ExistsForBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (bool, error)
}

type RatingStatsRepository interface {
	RecalcCarRatingStats(ctx context.Context, tx db.DBTX, carID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User, passwordHash string) (uuid.UUID, error)
}
