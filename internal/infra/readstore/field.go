package readstore

import (
	"context"
	"log/slog"

	"campo-agenda/internal/infra"
	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FieldReadStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewFieldReadStore(db *pgxpool.Pool, logger *slog.Logger) *FieldReadStore {
	return &FieldReadStore{db: db, logger: logger}
}

func (s *FieldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FieldView, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM fields
		WHERE id = $1`

	var view queries.FieldView
	err := s.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to find field view", err)
	}
	return &view, nil
}

func (s *FieldReadStore) FindAll(ctx context.Context) ([]*queries.FieldView, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM fields
		ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to list field views", err)
	}
	defer rows.Close()

	var views []*queries.FieldView
	for rows.Next() {
		var view queries.FieldView
		if err := rows.Scan(&view.ID, &view.Name, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan field view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate field views", err)
	}
	return views, nil
}
