package components

import (
	"campo-agenda/internal/handler"
	"campo-agenda/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFieldHandler,
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewPaymentHandler,
		api.NewStudentHandler,
		api.NewConfigHandler,
	),
	fx.Invoke(handler.NewRouter),
)
