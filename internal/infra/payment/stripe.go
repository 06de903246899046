package payment

import (
	"context"
	"encoding/json"

	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeGateway adapts the Stripe SDK to the payment ports. The API key is
// scoped to this client instead of the SDK's package-level global, so tests
// and future multi-tenant setups can run isolated instances.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*commands.GatewayIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}

	return &commands.GatewayIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// VerifyAndParse checks the Stripe-Signature header against the endpoint
// secret and flattens the event into the provider-neutral shape.
func (g *StripeGateway) VerifyAndParse(payload []byte, signatureHeader string) (*commands.GatewayEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return nil, errs.Wrap(err, "webhook signature verification failed")
	}

	out := &commands.GatewayEvent{Type: string(event.Type)}

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, errs.Wrap(err, "failed to parse payment intent event")
		}
		out.IntentID = intent.ID
		out.BookingID = intent.Metadata["booking_id"]
	case stripe.EventTypeChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, errs.Wrap(err, "failed to parse charge event")
		}
		if charge.PaymentIntent != nil {
			out.IntentID = charge.PaymentIntent.ID
		}
		out.BookingID = charge.Metadata["booking_id"]
	}

	return out, nil
}
