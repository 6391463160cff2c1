package components

import (
	"hall-booking/internal/infra/uow"

	"go.uber.org/fx"
)

// StoreModule holds the process-wide in-memory state. Each fx.App gets its own stores.
var StoreModule = fx.Module("store",
	fx.Provide(
		uow.NewStores,
		uow.NewMemoryUoW,
	),
)
