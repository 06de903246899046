package queries

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCarNotFound = errs.New("car not found")

type CarQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CarView, error)
	Search(ctx context.Context, filters CarSearchFilters) ([]*CarListItem, error)
}

type carQueriesImpl struct {
	readStore CarReadStore
}

func NewCarQueries(readStore CarReadStore) CarQueries {
	return &carQueriesImpl{readStore: readStore}
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to find car")
	}
	return view, nil
}

func (q *carQueriesImpl) Search(ctx context.Context, filters CarSearchFilters) ([]*CarListItem, error) {
	items, err := q.readStore.Search(ctx, filters)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search cars")
	}
	return items, nil
}
