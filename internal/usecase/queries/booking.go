package queries

import (
	"context"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingForbidden = errs.New("booking does not belong to user")
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
	// ListForActor returns all bookings for fleet managers and admins,
	// and only the actor's own bookings for customers.
	ListForActor(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if !actorRole.CanManageFleet() && view.UserID != actorID {
		return nil, ErrBookingForbidden
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListForActor(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*BookingListItem, error) {
	if actorRole.CanManageFleet() {
		items, err := q.readStore.FindAll(ctx)
		if err != nil {
			return nil, errs.Wrap(err, "failed to list bookings")
		}
		return items, nil
	}

	items, err := q.readStore.FindByUserID(ctx, actorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return items, nil
}
