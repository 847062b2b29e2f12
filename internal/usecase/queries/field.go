package queries

import (
	"context"

	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrFieldNotFound = errs.New("field not found")
	ErrQueryFailed   = errs.New("query failed")
)

type FieldViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	FindAll(ctx context.Context) ([]*FieldView, error)
}

type FieldQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	List(ctx context.Context) ([]*FieldView, error)
}

type fieldQueriesImpl struct {
	repo FieldViewRepo
}

func NewFieldQueries(repo FieldViewRepo) FieldQueries {
	return &fieldQueriesImpl{repo: repo}
}

func (q *fieldQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrFieldNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *fieldQueriesImpl) List(ctx context.Context) ([]*FieldView, error) {
	views, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
