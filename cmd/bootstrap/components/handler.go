package components

import (
	"srs-scheduler/internal/handler"
	"srs-scheduler/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReviewHandler,
		api.NewDueCardsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
