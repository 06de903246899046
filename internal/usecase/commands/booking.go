package commands

import (
	"context"
	"time"

	"car-rental-api/internal/domain/booking"
	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound             = errs.New("car not found")
	ErrCarNotBookable          = errs.New("car is not bookable")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrInvalidPeriod           = errs.New("invalid booking period")
	ErrInvalidTransition       = errs.New("invalid booking status transition")
	ErrBookingForbidden        = errs.New("operation not allowed on this booking")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingRequest struct {
	CarID   uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

type CreateBookingResult struct {
	BookingID       uuid.UUID
	TotalPriceCents int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
	CompleteBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	period, err := booking.NewPeriod(req.StartAt, req.EndAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	var result CreateBookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The advisory lock serializes creates per car so the conflict
		// check and the insert act as one atomic unit.
		if lockErr := tx.Bookings().LockCar(ctx, tx.DB(), req.CarID); lockErr != nil {
			return errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		carSnap, readErr := tx.Reads().CarByID(ctx, req.CarID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrCarNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		carStatus, statusErr := car.NewStatus(carSnap.Status)
		if statusErr != nil {
			return errs.Mark(statusErr, ErrDatabaseOperationFailed)
		}
		if !carSnap.IsActive || !carStatus.IsBookable() {
			return ErrCarNotBookable
		}

		conflict, confErr := tx.Bookings().HasActiveConflict(ctx, tx.DB(), req.CarID, period.Start(), period.End())
		if confErr != nil {
			return errs.Mark(confErr, ErrDatabaseOperationFailed)
		}
		if conflict {
			return ErrBookingConflict
		}

		entity, domErr := booking.NewBooking(userID, req.CarID, period, carSnap.DailyRateCents)
		if domErr != nil {
			return domErr
		}

		id, createErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		result = CreateBookingResult{
			BookingID:       id,
			TotalPriceCents: entity.Price().Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !actorRole.CanManageFleet() && snap.UserID != actorID {
			return ErrBookingForbidden
		}

		entity, err := snap.ToDomain()
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return updateCarAvailability(ctx, tx, snap.CarID, entity.Status(), c.clock.Now())
	})
}

func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role) error {
	if !actorRole.CanManageFleet() {
		return ErrBookingForbidden
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := snap.ToDomain()
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := entity.Complete(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return updateCarAvailability(ctx, tx, snap.CarID, entity.Status(), c.clock.Now())
	})
}

// updateCarAvailability derives the car's convenience status from the booking
// transition. Confirmation always marks the car rented. Any exit from an
// active status re-scans the live bookings instead of trusting a cached flag:
// the car goes back to available only when no pending/confirmed booking
// covers the present moment.
func updateCarAvailability(ctx context.Context, tx shared.Tx, carID uuid.UUID, newStatus booking.Status, now time.Time) error {
	switch newStatus {
	case booking.StatusConfirmed:
		if err := tx.Cars().UpdateStatus(ctx, tx.DB(), carID, car.StatusRented); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	case booking.StatusCancelled, booking.StatusCompleted, booking.StatusRefunded:
		active, err := tx.Bookings().HasActiveAt(ctx, tx.DB(), carID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !active {
			if err := tx.Cars().UpdateStatus(ctx, tx.DB(), carID, car.StatusAvailable); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
	}
	return nil
}
