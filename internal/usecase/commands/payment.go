package commands

import (
	"context"
	"log/slog"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/schedule"
	reqdto "campo-agenda/internal/handler/dto/request"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/clock"
	"campo-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPaymentValidation = errs.New("payment validation error")

type PaymentCommands interface {
	Register(ctx context.Context, bookingID uuid.UUID, req reqdto.RegisterPaymentRequest) (uuid.UUID, error)
}

type paymentUseCaseImpl struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	clock       clock.Clock
	logger      *slog.Logger
}

func NewPaymentUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	clock clock.Clock,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentUseCaseImpl{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		clock:       clock,
		logger:      logger,
	}
}

func (p *paymentUseCaseImpl) Register(ctx context.Context, bookingID uuid.UUID, req reqdto.RegisterPaymentRequest) (uuid.UUID, error) {
	entity, err := p.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrBookingNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	paidOn, err := schedule.ParseDate(req.PaidOn)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPaymentValidation)
	}

	payment, err := booking.NewPayment(entity.ID(), req.AmountCents, paidOn, p.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPaymentValidation)
	}

	if err := p.paymentRepo.Create(ctx, payment); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	p.logger.Info("payment registered",
		slog.String("booking_id", bookingID.String()),
		slog.Int64("amount_cents", req.AmountCents),
	)
	return payment.ID(), nil
}
