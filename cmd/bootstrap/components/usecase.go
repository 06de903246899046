package components

import (
	"log/slog"

	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCarCommands,
		commands.NewReviewCommands,
		NewPaymentCommands,
	),
)

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway commands.PaymentGateway,
	verifier commands.WebhookVerifier,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(uow, gateway, verifier, cfg.Stripe.Currency, clk, logger)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCarQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
