package components

import (
	"car-rental-api/internal/infra/payment"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewStripeGateway,
		func(g *payment.StripeGateway) commands.PaymentGateway { return g },
		func(g *payment.StripeGateway) commands.WebhookVerifier { return g },
	),
)

func NewStripeGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Stripe)
}
