package components

import (
	"bonus-crm/internal/handler"
	"bonus-crm/internal/handler/api"
	"bonus-crm/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTemplateHandler,
		api.NewOfferHandler,
		api.NewLanguageHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
