package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is customer feedback tied to a completed booking: one review per
// booking, enforced by a unique constraint in storage and re-checked by the
// command layer.
type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	carID     uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	title     Title
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(id, userID, carID, bookingID uuid.UUID, rating Rating, title Title, comment Comment, now time.Time) *Review {
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		userID:    userID,
		carID:     carID,
		bookingID: bookingID,
		rating:    rating,
		title:     title,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) CarID() uuid.UUID     { return r.carID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Title() Title         { return r.title }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
