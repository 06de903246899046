//go:build unit

package builder

import (
	"time"

	dombooking "car-rental-api/internal/domain/booking"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	UserEmail       string
	CarID           uuid.UUID
	CarName         string
	StartAt         time.Time
	EndAt           time.Time
	DailyRateCents  int64
	Status          string
	PaymentIntentID *string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().Truncate(time.Second)
	return &BookingBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		UserEmail:      "customer@example.com",
		CarID:          uuid.New(),
		CarName:        "Toyota Corolla",
		StartAt:        now.Add(24 * time.Hour),
		EndAt:          now.Add(72 * time.Hour),
		DailyRateCents: 5000,
		Status:         "pending",
		CreatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewPeriod(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.UserID, b.CarID, period, b.DailyRateCents)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	period, _ := dombooking.NewPeriod(b.StartAt, b.EndAt)
	price, _ := dombooking.PriceFor(period, b.DailyRateCents)
	return &shared.BookingSnapshot{
		ID:              b.ID,
		UserID:          b.UserID,
		CarID:           b.CarID,
		StartAt:         b.StartAt,
		EndAt:           b.EndAt,
		PriceCents:      price.Cents(),
		Status:          b.Status,
		PaymentIntentID: b.PaymentIntentID,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	snap := b.BuildSnapshot()
	return &queries.BookingView{
		ID:              snap.ID,
		UserID:          snap.UserID,
		UserEmail:       b.UserEmail,
		CarID:           snap.CarID,
		CarName:         b.CarName,
		StartAt:         snap.StartAt,
		EndAt:           snap.EndAt,
		TotalPriceCents: snap.PriceCents,
		Status:          snap.Status,
		PaymentIntentID: snap.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	snap := b.BuildSnapshot()
	return &queries.BookingListItem{
		ID:              snap.ID,
		CarID:           snap.CarID,
		CarName:         b.CarName,
		StartAt:         snap.StartAt,
		EndAt:           snap.EndAt,
		TotalPriceCents: snap.PriceCents,
		Status:          snap.Status,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CarID:   b.CarID,
		StartAt: b.StartAt,
		EndAt:   b.EndAt,
	}
}
