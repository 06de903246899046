//go:build unit

package car_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/car"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newCar(t *testing.T) *car.Car {
	t.Helper()
	c, err := car.NewCar(uuid.New(), "Toyota Corolla", "Toyota", "Corolla", 2022, "Berlin", 5000, now)
	require.NoError(t, err)
	return c
}

func TestNewCar(t *testing.T) {
	type args struct {
		name     string
		year     int
		location string
		rate     int64
	}
	valid := args{name: "Toyota Corolla", year: 2022, location: "Berlin", rate: 5000}

	cases := []struct {
		name   string
		mutate func(*args)
		errIs  error
	}{
		{"valid car", func(a *args) {}, nil},
		{"empty name", func(a *args) { a.name = "  " }, car.ErrEmptyName},
		{"empty location", func(a *args) { a.location = "" }, car.ErrEmptyLocation},
		{"zero rate", func(a *args) { a.rate = 0 }, car.ErrInvalidDailyRate},
		{"negative rate", func(a *args) { a.rate = -100 }, car.ErrInvalidDailyRate},
		{"year before 1900", func(a *args) { a.year = 1899 }, car.ErrInvalidYear},
		{"next model year is allowed", func(a *args) { a.year = now.Year() + 1 }, nil},
		{"year too far in the future", func(a *args) { a.year = now.Year() + 2 }, car.ErrInvalidYear},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := valid
			tc.mutate(&a)

			c, err := car.NewCar(uuid.New(), a.name, "Toyota", "Corolla", a.year, a.location, a.rate, now)

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, car.StatusAvailable, c.Status())
			assert.True(t, c.IsActive())
		})
	}
}

func TestCarIsBookable(t *testing.T) {
	c := newCar(t)
	assert.True(t, c.IsBookable())

	// Rented cars still take future bookings
	require.NoError(t, c.ChangeStatus(car.StatusRented))
	assert.True(t, c.IsBookable())

	require.NoError(t, c.ChangeStatus(car.StatusMaintenance))
	assert.False(t, c.IsBookable())

	require.NoError(t, c.ChangeStatus(car.StatusUnavailable))
	assert.False(t, c.IsBookable())
}

func TestCarChangeStatus(t *testing.T) {
	c := newCar(t)

	err := c.ChangeStatus(car.Status("scrapped"))
	assert.ErrorIs(t, err, car.ErrInvalidCarStatus)
	assert.Equal(t, car.StatusAvailable, c.Status())
}

func TestCarUpdateDetails(t *testing.T) {
	t.Run("updates all mutable fields", func(t *testing.T) {
		c := newCar(t)

		err := c.UpdateDetails("Honda Civic", "Honda", "Civic", 2023, "Munich", 6500, now)
		require.NoError(t, err)
		assert.Equal(t, "Honda Civic", c.Name())
		assert.Equal(t, "Honda", c.Make())
		assert.Equal(t, "Civic", c.Model())
		assert.Equal(t, 2023, c.Year())
		assert.Equal(t, "Munich", c.Location())
		assert.Equal(t, int64(6500), c.DailyRateCents())
	})

	t.Run("rejects invalid input and keeps previous values", func(t *testing.T) {
		c := newCar(t)

		err := c.UpdateDetails("", "Honda", "Civic", 2023, "Munich", 6500, now)
		assert.ErrorIs(t, err, car.ErrEmptyName)
		assert.Equal(t, "Toyota Corolla", c.Name())
		assert.Equal(t, int64(5000), c.DailyRateCents())
	})
}

func TestCarIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	c, err := car.NewCar(ownerID, "Toyota Corolla", "Toyota", "Corolla", 2022, "Berlin", 5000, now)
	require.NoError(t, err)

	assert.True(t, c.IsOwnedBy(ownerID))
	assert.False(t, c.IsOwnedBy(uuid.New()))
}
