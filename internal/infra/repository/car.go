package repository

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarRepository struct{}

func NewCarRepository() shared.CarRepository {
	return &CarRepository{}
}

func (r *CarRepository) Create(ctx context.Context, tx db.DBTX, c *car.Car) (uuid.UUID, error) {
	const query = `
		INSERT INTO cars (id, owner_id, name, make, model, year, location, daily_rate_cents, status, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		c.ID(), c.OwnerID(), c.Name(), c.Make(), c.Model(), c.Year(),
		c.Location(), c.DailyRateCents(), c.Status().String(), c.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create car", err)
	}
	return id, nil
}

func (r *CarRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status car.Status) error {
	const query = `UPDATE cars SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update car status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) UpdateDetails(ctx context.Context, tx db.DBTX, c *car.Car) error {
	const query = `
		UPDATE cars
		SET name = $2, make = $3, model = $4, year = $5, location = $6,
		    daily_rate_cents = $7, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		c.ID(), c.Name(), c.Make(), c.Model(), c.Year(), c.Location(), c.DailyRateCents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car details", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}
