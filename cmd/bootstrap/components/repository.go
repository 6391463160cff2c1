package components

import (
	"hall-booking/internal/handler/api"
	"hall-booking/internal/infra/readstore"
	"hall-booking/internal/infra/report"
	"hall-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Documents
		fx.Annotate(
			report.NewPDFRenderer,
			fx.As(new(api.CustomerReportRenderer)),
		),
	),
)
