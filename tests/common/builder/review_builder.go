//go:build unit

package builder

import (
	"time"

	domreview "car-rental-api/internal/domain/review"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    uuid.UUID
	UserEmail string
	CarID     uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Title     string
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:    uuid.New(),
		UserEmail: "reviewer@example.com",
		CarID:     uuid.New(),
		BookingID: uuid.New(),
		Rating:    5,
		Title:     "Great car",
		Comment:   "Clean, fast pickup, would rent again.",
		CreatedAt: time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	title, err := domreview.NewTitle(r.Title)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(uuid.Nil, r.UserID, r.CarID, r.BookingID, rating, title, comment, r.CreatedAt), nil
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        uuid.New(),
		UserID:    r.UserID,
		UserEmail: r.UserEmail,
		CarID:     r.CarID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
	}
}
