package bootstrap

import (
	"log/slog"

	"campo-agenda/internal/infra/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(
		RunMigrations,
	),
)

func RunMigrations(pool *pgxpool.Pool, logger *slog.Logger) error {
	if err := migrations.Up(pool); err != nil {
		return err
	}
	logger.Info("database migrations applied")
	return nil
}
