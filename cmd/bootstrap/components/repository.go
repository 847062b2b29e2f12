package components

import (
	"campo-agenda/internal/infra/readstore"
	"campo-agenda/internal/infra/repository"
	"campo-agenda/internal/usecase/commands"
	"campo-agenda/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			repository.NewFieldRepository,
			fx.As(new(commands.FieldRepository)),
			fx.As(new(queries.FieldStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingStore)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
			fx.As(new(queries.PaymentStore)),
		),
		fx.Annotate(
			repository.NewStudentRepository,
			fx.As(new(commands.StudentRepository)),
			fx.As(new(queries.StudentStore)),
		),
		fx.Annotate(
			repository.NewStudentPaymentRepository,
			fx.As(new(commands.StudentPaymentRepository)),
			fx.As(new(queries.StudentPaymentStore)),
		),
		fx.Annotate(
			repository.NewConfigRepository,
			fx.As(new(commands.ConfigRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewFieldReadStore,
			fx.As(new(queries.FieldViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentViewRepo)),
		),
		fx.Annotate(
			readstore.NewStudentReadStore,
			fx.As(new(queries.StudentViewRepo)),
		),
		fx.Annotate(
			readstore.NewConfigReadStore,
			fx.As(new(queries.ConfigViewRepo)),
			fx.As(new(queries.HoursStore)),
		),
	),
)
