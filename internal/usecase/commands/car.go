package commands

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarForbidden  = errs.New("operation not allowed on this car")
	ErrCarValidation = errs.New("invalid car attributes")
)

type CreateCarRequest struct {
	Name           string
	Make           string
	Model          string
	Year           int
	Location       string
	DailyRateCents int64
}

type UpdateCarRequest struct {
	Name           string
	Make           string
	Model          string
	Year           int
	Location       string
	DailyRateCents int64
}

type CreateCarResult struct {
	CarID uuid.UUID
}

type CarCommands interface {
	CreateCar(ctx context.Context, req CreateCarRequest, actorID uuid.UUID, actorRole user.Role) (*CreateCarResult, error)
	UpdateCar(ctx context.Context, carID uuid.UUID, req UpdateCarRequest, actorID uuid.UUID, actorRole user.Role) error
	UpdateCarStatus(ctx context.Context, carID uuid.UUID, status string, actorID uuid.UUID, actorRole user.Role) error
}

type carCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCarCommands(uow shared.UnitOfWork, clk clock.Clock) CarCommands {
	return &carCommandsImpl{uow: uow, clock: clk}
}

func (c *carCommandsImpl) CreateCar(ctx context.Context, req CreateCarRequest, actorID uuid.UUID, actorRole user.Role) (*CreateCarResult, error) {
	if !actorRole.CanManageFleet() {
		return nil, ErrCarForbidden
	}

	entity, err := car.NewCar(actorID, req.Name, req.Make, req.Model, req.Year, req.Location, req.DailyRateCents, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrCarValidation)
	}

	var result CreateCarResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Cars().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		result.CarID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *carCommandsImpl) UpdateCar(ctx context.Context, carID uuid.UUID, req UpdateCarRequest, actorID uuid.UUID, actorRole user.Role) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadOwnedCar(ctx, tx, carID, actorID, actorRole)
		if err != nil {
			return err
		}

		if err := entity.UpdateDetails(req.Name, req.Make, req.Model, req.Year, req.Location, req.DailyRateCents, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrCarValidation)
		}

		if err := tx.Cars().UpdateDetails(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *carCommandsImpl) UpdateCarStatus(ctx context.Context, carID uuid.UUID, status string, actorID uuid.UUID, actorRole user.Role) error {
	newStatus, err := car.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrCarValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadOwnedCar(ctx, tx, carID, actorID, actorRole)
		if err != nil {
			return err
		}

		if err := entity.ChangeStatus(newStatus); err != nil {
			return errs.Mark(err, ErrCarValidation)
		}

		if err := tx.Cars().UpdateStatus(ctx, tx.DB(), carID, entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// loadOwnedCar fetches the car and enforces that only the owning fleet
// manager or an admin may mutate it.
func (c *carCommandsImpl) loadOwnedCar(ctx context.Context, tx shared.Tx, carID, actorID uuid.UUID, actorRole user.Role) (*car.Car, error) {
	snap, err := tx.Reads().CarByID(ctx, carID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := snap.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if actorRole != user.RoleAdmin && !entity.IsOwnedBy(actorID) {
		return nil, ErrCarForbidden
	}
	return entity, nil
}
