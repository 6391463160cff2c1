package bootstrap

import (
	"hall-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CoreModule,
	components.HandlerModule,
)

// CoreModule is everything below the HTTP layer.
var CoreModule = fx.Options(
	components.StoreModule,
	components.RepositoryModule,
	components.UseCaseModule,
)
