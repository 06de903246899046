//go:build unit

package commands_test

import (
	"context"
	"time"

	"car-rental-api/internal/domain/booking"
	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/review"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUow is an in-memory UnitOfWork. State mutations inside Within are not
// rolled back on error; tests that care assert on status fields instead.
type fakeUow struct {
	cars     map[uuid.UUID]*shared.CarSnapshot
	bookings map[uuid.UUID]*shared.BookingSnapshot
	users    map[string]*shared.UserSnapshot
	reviews  map[uuid.UUID]uuid.UUID // bookingID -> reviewID

	lockedCars    []uuid.UUID
	recalcedCars  []uuid.UUID
	createdUsers  []*user.User
	passwordHash  string
	failCreate    error
	failReads     error
	failUserWrite error
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		cars:     make(map[uuid.UUID]*shared.CarSnapshot),
		bookings: make(map[uuid.UUID]*shared.BookingSnapshot),
		users:    make(map[string]*shared.UserSnapshot),
		reviews:  make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeUow) addCar(snap *shared.CarSnapshot)         { f.cars[snap.ID] = snap }
func (f *fakeUow) addBooking(snap *shared.BookingSnapshot) { f.bookings[snap.ID] = snap }

func (f *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{state: f})
}

func (f *fakeUow) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUow) CommandReads() shared.CommandReads {
	return &fakeReads{state: f}
}

type fakeTx struct {
	state *fakeUow
}

func (t *fakeTx) Bookings() shared.BookingRepository       { return &fakeBookingRepo{state: t.state} }
func (t *fakeTx) Cars() shared.CarRepository               { return &fakeCarRepo{state: t.state} }
func (t *fakeTx) Reviews() shared.ReviewRepository         { return &fakeReviewRepo{state: t.state} }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository { return &fakeRatingStatsRepo{state: t.state} }
func (t *fakeTx) Users() shared.UserRepository             { return &fakeUserRepo{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads               { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() db.DBTX                              { return nil }

type fakeReads struct {
	state *fakeUow
}

func (r *fakeReads) CarByID(_ context.Context, id uuid.UUID) (*shared.CarSnapshot, error) {
	if r.state.failReads != nil {
		return nil, r.state.failReads
	}
	snap, ok := r.state.cars[id]
	if !ok {
		return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.state.failReads != nil {
		return nil, r.state.failReads
	}
	snap, ok := r.state.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) BookingByPaymentIntent(_ context.Context, intentID string) (*shared.BookingSnapshot, error) {
	for _, snap := range r.state.bookings {
		if snap.PaymentIntentID != nil && *snap.PaymentIntentID == intentID {
			cp := *snap
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	snap, ok := r.state.users[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

type fakeBookingRepo struct {
	state *fakeUow
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.state.failCreate != nil {
		return uuid.Nil, r.state.failCreate
	}
	r.state.bookings[b.ID()] = &shared.BookingSnapshot{
		ID:         b.ID(),
		UserID:     b.UserID(),
		CarID:      b.CarID(),
		StartAt:    b.Period().Start(),
		EndAt:      b.Period().End(),
		PriceCents: b.Price().Cents(),
		Status:     b.Status().String(),
	}
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	snap, ok := r.state.bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap.Status = status.String()
	return nil
}

func (r *fakeBookingRepo) SetPaymentIntent(_ context.Context, _ db.DBTX, id uuid.UUID, intentID string) error {
	snap, ok := r.state.bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	snap.PaymentIntentID = &intentID
	return nil
}

func (r *fakeBookingRepo) LockCar(_ context.Context, _ db.DBTX, carID uuid.UUID) error {
	r.state.lockedCars = append(r.state.lockedCars, carID)
	return nil
}

func (r *fakeBookingRepo) HasActiveConflict(_ context.Context, _ db.DBTX, carID uuid.UUID, start, end time.Time) (bool, error) {
	for _, snap := range r.state.bookings {
		if snap.CarID != carID {
			continue
		}
		status, err := booking.NewStatus(snap.Status)
		if err != nil || !status.IsActive() {
			continue
		}
		// half-open [start, end)
		if !(snap.EndAt.Compare(start) <= 0 || snap.StartAt.Compare(end) >= 0) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) HasActiveAt(_ context.Context, _ db.DBTX, carID uuid.UUID, at time.Time) (bool, error) {
	for _, snap := range r.state.bookings {
		if snap.CarID != carID {
			continue
		}
		status, err := booking.NewStatus(snap.Status)
		if err != nil || !status.IsActive() {
			continue
		}
		if !snap.StartAt.After(at) && snap.EndAt.After(at) {
			return true, nil
		}
	}
	return false, nil
}

type fakeCarRepo struct {
	state *fakeUow
}

func (r *fakeCarRepo) Create(_ context.Context, _ db.DBTX, c *car.Car) (uuid.UUID, error) {
	r.state.cars[c.ID()] = &shared.CarSnapshot{
		ID:             c.ID(),
		OwnerID:        c.OwnerID(),
		Name:           c.Name(),
		Make:           c.Make(),
		Model:          c.Model(),
		Year:           c.Year(),
		Location:       c.Location(),
		DailyRateCents: c.DailyRateCents(),
		Status:         c.Status().String(),
		IsActive:       c.IsActive(),
	}
	return c.ID(), nil
}

func (r *fakeCarRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status car.Status) error {
	snap, ok := r.state.cars[id]
	if !ok {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	snap.Status = status.String()
	return nil
}

func (r *fakeCarRepo) UpdateDetails(_ context.Context, _ db.DBTX, c *car.Car) error {
	snap, ok := r.state.cars[c.ID()]
	if !ok {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	snap.Name = c.Name()
	snap.Make = c.Make()
	snap.Model = c.Model()
	snap.Year = c.Year()
	snap.Location = c.Location()
	snap.DailyRateCents = c.DailyRateCents()
	return nil
}

type fakeReviewRepo struct {
	state *fakeUow
}

func (r *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	if _, exists := r.state.reviews[rev.BookingID()]; exists {
		return uuid.Nil, infra.WrapRepoErr("duplicate review", nil, infra.KindDuplicateKey)
	}
	r.state.reviews[rev.BookingID()] = rev.ID()
	return rev.ID(), nil
}

func (r *fakeReviewRepo) ExistsForBooking(_ context.Context, _ db.DBTX, bookingID uuid.UUID) (bool, error) {
	_, exists := r.state.reviews[bookingID]
	return exists, nil
}

type fakeRatingStatsRepo struct {
	state *fakeUow
}

func (r *fakeRatingStatsRepo) RecalcCarRatingStats(_ context.Context, _ db.DBTX, carID uuid.UUID) error {
	r.state.recalcedCars = append(r.state.recalcedCars, carID)
	return nil
}

type fakeUserRepo struct {
	state *fakeUow
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User, passwordHash string) (uuid.UUID, error) {
	if r.state.failUserWrite != nil {
		return uuid.Nil, r.state.failUserWrite
	}
	if _, exists := r.state.users[u.Email().Value()]; exists {
		return uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	r.state.users[u.Email().Value()] = &shared.UserSnapshot{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		PasswordHash: passwordHash,
	}
	r.state.createdUsers = append(r.state.createdUsers, u)
	r.state.passwordHash = passwordHash
	return u.ID(), nil
}
