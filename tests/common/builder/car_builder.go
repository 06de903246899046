//go:build unit

package builder

import (
	"time"

	domcar "car-rental-api/internal/domain/car"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarBuilder struct {
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
	Now            time.Time
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           "City Compact",
		Make:           "Toyota",
		Model:          "Corolla",
		Year:           2022,
		Location:       "Berlin",
		DailyRateCents: 5000,
		Status:         "available",
		IsActive:       true,
		Now:            time.Now(),
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) BuildDomain() (*domcar.Car, error) {
	return domcar.NewCar(b.OwnerID, b.Name, b.Make, b.Model, b.Year, b.Location, b.DailyRateCents, b.Now)
}

func (b *CarBuilder) BuildSnapshot() *shared.CarSnapshot {
	return &shared.CarSnapshot{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		Name:           b.Name,
		Make:           b.Make,
		Model:          b.Model,
		Year:           b.Year,
		Location:       b.Location,
		DailyRateCents: b.DailyRateCents,
		Status:         b.Status,
		IsActive:       b.IsActive,
	}
}

func (b *CarBuilder) BuildView() *queries.CarView {
	return &queries.CarView{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		Name:           b.Name,
		Make:           b.Make,
		Model:          b.Model,
		Year:           b.Year,
		Location:       b.Location,
		DailyRateCents: b.DailyRateCents,
		Status:         b.Status,
		IsActive:       b.IsActive,
	}
}

func (b *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Name:           b.Name,
		Make:           b.Make,
		Model:          b.Model,
		Year:           b.Year,
		Location:       b.Location,
		DailyRateCents: b.DailyRateCents,
	}
}
