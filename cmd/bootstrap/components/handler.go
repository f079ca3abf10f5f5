package components

import (
	"dealdesk/internal/handler"
	"dealdesk/internal/handler/api"
	"dealdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDealHandler,
		api.NewDeliverableHandler,
		api.NewBrandHandler,
		api.NewConflictHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
