package repository

import (
	"context"
	"log/slog"
	"time"

	"campo-agenda/internal/domain/field"
	"campo-agenda/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FieldRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewFieldRepository(db *pgxpool.Pool, logger *slog.Logger) *FieldRepository {
	return &FieldRepository{db: db, logger: logger}
}

func (r *FieldRepository) Create(ctx context.Context, f *field.Field) error {
	const query = `
		INSERT INTO fields (id, name)
		VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, query, f.ID(), f.Name()); err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to insert field", err)
	}
	return nil
}

func (r *FieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*field.Field, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM fields
		WHERE id = $1`

	var (
		fieldID              uuid.UUID
		name                 string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&fieldID, &name, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find field", err)
	}
	return field.ReconstructField(fieldID, name, createdAt, updatedAt), nil
}

func (r *FieldRepository) Update(ctx context.Context, f *field.Field) error {
	const query = `
		UPDATE fields
		SET name = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, f.ID(), f.Name())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update field", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "field not found", nil)
	}
	return nil
}

func (r *FieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM fields WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to delete field", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "field not found", nil)
	}
	return nil
}
