package commands

import (
	"context"
	"log/slog"

	"campo-agenda/internal/domain/field"
	reqdto "campo-agenda/internal/handler/dto/request"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrFieldNotFound   = errs.New("field not found")
	ErrFieldValidation = errs.New("field validation error")
	ErrFieldSaveFailed = errs.New("failed to save field")
)

type FieldCommands interface {
	Create(ctx context.Context, req reqdto.CreateFieldRequest) (uuid.UUID, error)
	Rename(ctx context.Context, id uuid.UUID, req reqdto.UpdateFieldRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fieldUseCaseImpl struct {
	fieldRepo FieldRepository
	logger    *slog.Logger
}

func NewFieldUseCase(fieldRepo FieldRepository, logger *slog.Logger) FieldCommands {
	return &fieldUseCaseImpl{fieldRepo: fieldRepo, logger: logger}
}

func (f *fieldUseCaseImpl) Create(ctx context.Context, req reqdto.CreateFieldRequest) (uuid.UUID, error) {
	entity, err := field.NewField(req.Name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrFieldValidation)
	}
	if err := f.fieldRepo.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrFieldSaveFailed)
	}
	f.logger.Info("field created", slog.String("field_id", entity.ID().String()))
	return entity.ID(), nil
}

func (f *fieldUseCaseImpl) Rename(ctx context.Context, id uuid.UUID, req reqdto.UpdateFieldRequest) error {
	entity, err := f.fieldRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrFieldNotFound)
		}
		return errs.Mark(err, ErrFieldSaveFailed)
	}
	if err := entity.Rename(req.Name); err != nil {
		return errs.Mark(err, ErrFieldValidation)
	}
	if err := f.fieldRepo.Update(ctx, entity); err != nil {
		return errs.Mark(err, ErrFieldSaveFailed)
	}
	return nil
}

func (f *fieldUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := f.fieldRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrFieldNotFound)
		}
		return errs.Mark(err, ErrFieldSaveFailed)
	}
	f.logger.Info("field deleted", slog.String("field_id", id.String()))
	return nil
}
