package commands

import (
	"context"
	"log/slog"

	"car-rental-api/internal/domain/booking"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentInvalidState  = errs.New("booking is not payable in its current status")
	ErrPaymentGatewayFailed = errs.New("payment gateway request failed")
	ErrWebhookVerification  = errs.New("webhook signature verification failed")
)

// Gateway event types the webhook handler reacts to. Everything else is
// acknowledged and ignored.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventChargeRefunded   = "charge.refunded"
)

type GatewayIntent struct {
	ID           string
	ClientSecret string
}

// GatewayEvent is the provider-neutral shape of a verified webhook event.
// BookingID carries the metadata correlation value when present; IntentID is
// the fallback key.
type GatewayEvent struct {
	Type      string
	IntentID  string
	BookingID string
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*GatewayIntent, error)
}

type WebhookVerifier interface {
	VerifyAndParse(payload []byte, signatureHeader string) (*GatewayEvent, error)
}

type CreateIntentResult struct {
	IntentID     string
	ClientSecret string
}

type PaymentCommands interface {
	CreatePaymentIntent(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) (*CreateIntentResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	verifier WebhookVerifier
	currency string
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	verifier WebhookVerifier,
	currency string,
	clk clock.Clock,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		gateway:  gateway,
		verifier: verifier,
		currency: currency,
		clock:    clk,
		logger:   logger,
	}
}

func (c *paymentCommandsImpl) CreatePaymentIntent(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID) (*CreateIntentResult, error) {
	snap, err := c.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Paying is a customer act: even admins do not create intents for
	// someone else's booking.
	if snap.UserID != actorID {
		return nil, ErrBookingForbidden
	}
	if snap.Status != booking.StatusPending.String() {
		return nil, ErrPaymentInvalidState
	}

	intent, err := c.gateway.CreateIntent(ctx, snap.PriceCents, c.currency, map[string]string{
		"booking_id": bookingID.String(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// A repeat call simply replaces the stored intent id; the previous
		// intent is abandoned on the gateway side.
		if err := tx.Bookings().SetPaymentIntent(ctx, tx.DB(), bookingID, intent.ID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateIntentResult{IntentID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

func (c *paymentCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := c.verifier.VerifyAndParse(payload, signatureHeader)
	if err != nil {
		return errs.Mark(err, ErrWebhookVerification)
	}

	switch event.Type {
	case EventPaymentSucceeded:
		return c.onPaymentSucceeded(ctx, event)
	case EventChargeRefunded:
		return c.onChargeRefunded(ctx, event)
	default:
		c.logger.DebugContext(ctx, "ignoring webhook event", slog.String("type", event.Type))
		return nil
	}
}

func (c *paymentCommandsImpl) onPaymentSucceeded(ctx context.Context, event *GatewayEvent) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, found, err := c.findBooking(ctx, tx, event)
		if err != nil {
			return err
		}
		if !found {
			// Unknown or foreign intent. Dropping it keeps the endpoint
			// safe to replay and stops the provider from retrying forever.
			c.logger.WarnContext(ctx, "webhook references unknown booking",
				slog.String("intent_id", event.IntentID))
			return nil
		}

		if snap.Status != booking.StatusPending.String() {
			// Duplicate delivery. The first one already confirmed.
			return nil
		}

		entity, err := snap.ToDomain()
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := entity.Confirm(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return updateCarAvailability(ctx, tx, snap.CarID, entity.Status(), c.clock.Now())
	})
}

func (c *paymentCommandsImpl) onChargeRefunded(ctx context.Context, event *GatewayEvent) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, found, err := c.findBooking(ctx, tx, event)
		if err != nil {
			return err
		}
		if !found {
			c.logger.WarnContext(ctx, "refund webhook references unknown booking",
				slog.String("intent_id", event.IntentID))
			return nil
		}

		if snap.Status != booking.StatusConfirmed.String() {
			return nil
		}

		entity, err := snap.ToDomain()
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := entity.Refund(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return updateCarAvailability(ctx, tx, snap.CarID, entity.Status(), c.clock.Now())
	})
}

// findBooking correlates an event to a booking, preferring the metadata
// booking_id and falling back to the stored intent id.
func (c *paymentCommandsImpl) findBooking(ctx context.Context, tx shared.Tx, event *GatewayEvent) (*shared.BookingSnapshot, bool, error) {
	if event.BookingID != "" {
		if id, parseErr := uuid.Parse(event.BookingID); parseErr == nil {
			snap, err := tx.Reads().BookingByID(ctx, id)
			if err == nil {
				return snap, true, nil
			}
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
	}

	if event.IntentID == "" {
		return nil, false, nil
	}
	snap, err := tx.Reads().BookingByPaymentIntent(ctx, event.IntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, nil
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, true, nil
}
