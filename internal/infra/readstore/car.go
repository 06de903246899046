package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	const query = `
		SELECT c.id, c.owner_id, c.name, c.make, c.model, c.year, c.location,
		       c.daily_rate_cents, c.status, c.is_active,
		       COALESCE(s.review_count, 0), COALESCE(s.average_rating, 0),
		       c.created_at, c.updated_at
		FROM cars c
		LEFT JOIN car_rating_stats s ON s.car_id = c.id
		WHERE c.id = $1`

	var v queries.CarView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Make, &v.Model, &v.Year, &v.Location,
		&v.DailyRateCents, &v.Status, &v.IsActive,
		&v.ReviewCount, &v.AverageRating,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get car view by id", err)
	}
	return &v, nil
}

// Search builds the WHERE clause dynamically from the given filters. The
// availability filter excludes cars that have any pending/confirmed booking
// overlapping the requested [from, until) window.
func (r *CarReadStore) Search(ctx context.Context, filters queries.CarSearchFilters) ([]*queries.CarListItem, error) {
	builder := sq.Select("id", "name", "make", "model", "year", "location", "daily_rate_cents", "status").
		From("cars").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filters.Location != "" {
		builder = builder.Where(sq.ILike{"location": "%" + filters.Location + "%"})
	}
	if filters.MinDailyCents > 0 {
		builder = builder.Where(sq.GtOrEq{"daily_rate_cents": filters.MinDailyCents})
	}
	if filters.MaxDailyCents > 0 {
		builder = builder.Where(sq.LtOrEq{"daily_rate_cents": filters.MaxDailyCents})
	}
	if filters.AvailableFrom != nil && filters.AvailableUntil != nil {
		builder = builder.Where(
			`NOT EXISTS (
				SELECT 1 FROM bookings b
				WHERE b.car_id = cars.id
				  AND b.status IN ('pending', 'confirmed')
				  AND NOT (b.end_at <= ? OR b.start_at >= ?)
			)`,
			*filters.AvailableFrom, *filters.AvailableUntil,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build car search query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search cars", err)
	}
	defer rows.Close()

	result := []*queries.CarListItem{}
	for rows.Next() {
		var item queries.CarListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Make, &item.Model, &item.Year,
			&item.Location, &item.DailyRateCents, &item.Status,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car rows", err)
	}
	return result, nil
}
