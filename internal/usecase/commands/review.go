package commands

import (
	"context"

	"car-rental-api/internal/domain/booking"
	"car-rental-api/internal/domain/review"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewValidation    = errs.New("invalid review attributes")
	ErrReviewNotAllowed    = errs.New("review not allowed for this booking")
	ErrBookingNotEligible  = errs.New("booking is not completed")
	ErrReviewAlreadyExists = errs.New("booking already has a review")
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Title     string
	Comment   string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (c *reviewCommandsImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return nil, errs.Mark(err, ErrReviewValidation)
	}
	title, err := review.NewTitle(req.Title)
	if err != nil {
		return nil, errs.Mark(err, ErrReviewValidation)
	}
	comment, err := review.NewComment(req.Comment)
	if err != nil {
		return nil, errs.Mark(err, ErrReviewValidation)
	}

	var result CreateReviewResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, req.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if snap.UserID != userID {
			return ErrReviewNotAllowed
		}
		if snap.Status != booking.StatusCompleted.String() {
			return ErrBookingNotEligible
		}

		exists, err := tx.Reviews().ExistsForBooking(ctx, tx.DB(), req.BookingID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrReviewAlreadyExists
		}

		entity := review.NewReview(uuid.Nil, userID, snap.CarID, req.BookingID, rating, title, comment, c.clock.Now())

		id, err := tx.Reviews().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrReviewAlreadyExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Stats live in the same transaction so a committed review is never
		// observable without its aggregate counters.
		if err := tx.RatingStats().RecalcCarRatingStats(ctx, tx.DB(), snap.CarID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result.ReviewID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
