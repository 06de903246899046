package car

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinYear = 1900
)

var (
	ErrInvalidCarStatus = errors.New("invalid car status")
	ErrInvalidDailyRate = errors.New("daily rate must be positive")
	ErrInvalidYear      = errors.New("invalid model year")
	ErrEmptyName        = errors.New("car name cannot be empty")
	ErrEmptyLocation    = errors.New("location cannot be empty")
)

type Car struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	name           string
	make           string
	model          string
	year           int
	location       string
	dailyRateCents int64
	status         Status
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCar(ownerID uuid.UUID, name, carMake, model string, year int, location string, dailyRateCents int64, now time.Time) (*Car, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if dailyRateCents <= 0 {
		return nil, ErrInvalidDailyRate
	}
	if year < MinYear || year > now.Year()+1 {
		return nil, ErrInvalidYear
	}

	return &Car{
		id:             uuid.New(),
		ownerID:        ownerID,
		name:           name,
		make:           carMake,
		model:          model,
		year:           year,
		location:       location,
		dailyRateCents: dailyRateCents,
		status:         StatusAvailable,
		isActive:       true,
	}, nil
}

func ReconstructCar(
	id, ownerID uuid.UUID,
	name, carMake, model string,
	year int,
	location string,
	dailyRateCents int64,
	status Status,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:             id,
		ownerID:        ownerID,
		name:           name,
		make:           carMake,
		model:          model,
		year:           year,
		location:       location,
		dailyRateCents: dailyRateCents,
		status:         status,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Car) IsBookable() bool {
	return c.isActive && c.status.IsBookable()
}

func (c *Car) IsOwnedBy(userID uuid.UUID) bool {
	return c.ownerID == userID
}

func (c *Car) ID() uuid.UUID         { return c.id }
func (c *Car) OwnerID() uuid.UUID    { return c.ownerID }
func (c *Car) Name() string          { return c.name }
func (c *Car) Make() string          { return c.make }
func (c *Car) Model() string         { return c.model }
func (c *Car) Year() int             { return c.year }
func (c *Car) Location() string      { return c.location }
func (c *Car) DailyRateCents() int64 { return c.dailyRateCents }
func (c *Car) Status() Status        { return c.status }
func (c *Car) IsActive() bool        { return c.isActive }
func (c *Car) CreatedAt() time.Time  { return c.createdAt }
func (c *Car) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Car) UpdateDetails(name, carMake, model string, year int, location string, dailyRateCents int64, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}
	if dailyRateCents <= 0 {
		return ErrInvalidDailyRate
	}
	if year < MinYear || year > now.Year()+1 {
		return ErrInvalidYear
	}

	c.name = name
	c.make = carMake
	c.model = model
	c.year = year
	c.location = location
	c.dailyRateCents = dailyRateCents
	return nil
}

func (c *Car) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidCarStatus
	}
	c.status = status
	return nil
}
