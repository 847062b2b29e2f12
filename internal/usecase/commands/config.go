package commands

import (
	"context"
	"log/slog"

	"campo-agenda/internal/domain/schedule"
	reqdto "campo-agenda/internal/handler/dto/request"
	"campo-agenda/internal/pkg/errs"
)

var ErrConfigValidation = errs.New("config validation error")

type ConfigCommands interface {
	SetOperatingHours(ctx context.Context, req reqdto.SetOperatingHoursRequest) error
	SetPrice(ctx context.Context, req reqdto.SetPriceRequest) error
}

type configUseCaseImpl struct {
	configRepo ConfigRepository
	logger     *slog.Logger
}

func NewConfigUseCase(configRepo ConfigRepository, logger *slog.Logger) ConfigCommands {
	return &configUseCaseImpl{configRepo: configRepo, logger: logger}
}

func (c *configUseCaseImpl) SetOperatingHours(ctx context.Context, req reqdto.SetOperatingHoursRequest) error {
	// Validated as an interval so open < close holds.
	hours, err := schedule.NewInterval(req.Open, req.Close)
	if err != nil {
		return errs.Mark(err, ErrConfigValidation)
	}
	if err := c.configRepo.UpsertOperatingHours(ctx, hours.Start(), hours.End()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	c.logger.Info("operating hours updated",
		slog.String("open", hours.Start()),
		slog.String("close", hours.End()),
	)
	return nil
}

func (c *configUseCaseImpl) SetPrice(ctx context.Context, req reqdto.SetPriceRequest) error {
	class := schedule.Class(req.Class)
	if !class.IsValid() {
		return errs.Mark(schedule.ErrUnknownClass, ErrConfigValidation)
	}
	if req.AmountCents < 0 {
		return ErrConfigValidation
	}
	if err := c.configRepo.UpsertPrice(ctx, class, req.AmountCents); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
