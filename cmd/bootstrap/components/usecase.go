package components

import (
	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/pkg/clock"
	"campo-agenda/internal/pkg/config"
	"campo-agenda/internal/pkg/keylock"
	"campo-agenda/internal/usecase/commands"
	"campo-agenda/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	keylock.New,
	booking.NewFactory,
	func(cfg config.Config) config.ScheduleConfig {
		return cfg.Schedule
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFieldUseCase,
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewStudentUseCase,
		commands.NewConfigUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFieldQueries,
		queries.NewBookingQueries,
		queries.NewScheduleQueries,
		queries.NewBillingQueries,
		queries.NewStudentQueries,
		queries.NewConfigQueries,
	),
)
