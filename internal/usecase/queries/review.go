package queries

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByCar(ctx context.Context, carID uuid.UUID) ([]*ReviewView, error)
	CarRatingStats(ctx context.Context, carID uuid.UUID) (*CarRatingStatsView, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, errs.Wrap(err, "failed to find review")
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByCar(ctx context.Context, carID uuid.UUID) ([]*ReviewView, error) {
	views, err := q.readStore.FindByCarID(ctx, carID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reviews")
	}
	return views, nil
}

func (q *reviewQueriesImpl) CarRatingStats(ctx context.Context, carID uuid.UUID) (*CarRatingStatsView, error) {
	stats, err := q.readStore.CarRatingStats(ctx, carID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load rating stats")
	}
	return stats, nil
}
