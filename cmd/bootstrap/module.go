package bootstrap

import (
	"campo-agenda/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	MigrateModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
