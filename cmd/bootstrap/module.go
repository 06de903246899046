package bootstrap

import (
	"car-rental-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.PaymentModule,
	components.UseCaseModule,
	components.HandlerModule,
)
