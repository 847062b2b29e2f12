package repository

import (
	"context"
	"log/slog"

	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ConfigRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewConfigRepository(db *pgxpool.Pool, logger *slog.Logger) *ConfigRepository {
	return &ConfigRepository{db: db, logger: logger}
}

// Operating hours are a singleton row; the desk has one schedule for the
// whole facility.
func (r *ConfigRepository) UpsertOperatingHours(ctx context.Context, open, close string) error {
	const query = `
		INSERT INTO operating_hours (id, open_time, close_time)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET open_time = EXCLUDED.open_time,
		    close_time = EXCLUDED.close_time,
		    updated_at = now()`

	if _, err := r.db.Exec(ctx, query, open, close); err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to upsert operating hours", err)
	}
	return nil
}

func (r *ConfigRepository) UpsertPrice(ctx context.Context, class schedule.Class, amountCents int64) error {
	const query = `
		INSERT INTO price_table (class, amount_cents)
		VALUES ($1, $2)
		ON CONFLICT (class) DO UPDATE
		SET amount_cents = EXCLUDED.amount_cents,
		    updated_at = now()`

	if _, err := r.db.Exec(ctx, query, class.String(), amountCents); err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to upsert price", err)
	}
	return nil
}
