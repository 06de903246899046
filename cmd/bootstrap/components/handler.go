package components

import (
	"car-rental-api/internal/handler"
	"car-rental-api/internal/handler/api"
	"car-rental-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCarHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
