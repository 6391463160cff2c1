package components

import (
	"hall-booking/internal/handler"
	"hall-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewCustomerHandler,
	),
	fx.Invoke(handler.NewRouter),
)
