package readstore

import (
	"context"
	"log/slog"

	"campo-agenda/internal/infra"
	"campo-agenda/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ConfigReadStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewConfigReadStore(db *pgxpool.Pool, logger *slog.Logger) *ConfigReadStore {
	return &ConfigReadStore{db: db, logger: logger}
}

func (s *ConfigReadStore) OperatingHours(ctx context.Context) (*queries.OperatingHoursView, error) {
	const query = `
		SELECT open_time, close_time
		FROM operating_hours
		WHERE id = 1`

	var view queries.OperatingHoursView
	err := s.db.QueryRow(ctx, query).Scan(&view.Open, &view.Close)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to find operating hours", err)
	}
	return &view, nil
}

func (s *ConfigReadStore) Prices(ctx context.Context) ([]*queries.PriceView, error) {
	const query = `
		SELECT class, amount_cents
		FROM price_table
		ORDER BY class`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to list prices", err)
	}
	defer rows.Close()

	var views []*queries.PriceView
	for rows.Next() {
		var view queries.PriceView
		if err := rows.Scan(&view.Class, &view.AmountCents); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan price", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate prices", err)
	}
	return views, nil
}
