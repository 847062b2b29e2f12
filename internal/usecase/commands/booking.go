package commands

import (
	"context"
	"log/slog"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/schedule"
	reqdto "campo-agenda/internal/handler/dto/request"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/errs"
	"campo-agenda/internal/pkg/keylock"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingValidation       = errs.New("booking validation error")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrDuplicateBooking        = errs.New("duplicate booking")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	fieldRepo      FieldRepository
	bookingFactory *booking.Factory
	fieldLocks     *keylock.KeyedMutex
	logger         *slog.Logger
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	bookingFactory *booking.Factory,
	fieldLocks *keylock.KeyedMutex,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		fieldRepo:      fieldRepo,
		bookingFactory: bookingFactory,
		fieldLocks:     fieldLocks,
		logger:         logger,
	}
}

func (b *bookingUseCaseImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (uuid.UUID, error) {
	fieldEntity, err := b.fieldRepo.FindByID(ctx, req.FieldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrFieldNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	anchor, err := schedule.ParseDate(req.AnchorDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingValidation)
	}
	slot, err := schedule.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingValidation)
	}

	candidate, err := b.bookingFactory.CreateBooking(
		fieldEntity,
		schedule.Class(req.Class),
		anchor,
		slot,
		req.OwnerName,
		req.OwnerContact,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrBookingValidation)
	}

	// Conflict check and insert must be atomic per field, otherwise two
	// concurrent requests can both pass the check.
	unlock := b.fieldLocks.Lock(req.FieldID)
	defer unlock()

	if err := b.ensureNoConflict(ctx, candidate); err != nil {
		return uuid.Nil, err
	}

	if err := b.bookingRepo.Create(ctx, candidate); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateBooking)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.logger.Info("booking created",
		slog.String("booking_id", candidate.ID().String()),
		slog.String("field_id", req.FieldID.String()),
		slog.String("class", candidate.Class().String()),
	)
	return candidate.ID(), nil
}

func (b *bookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) error {
	entity, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if req.StartTime != nil && req.EndTime != nil {
		slot, err := schedule.NewInterval(*req.StartTime, *req.EndTime)
		if err != nil {
			return errs.Mark(err, ErrBookingValidation)
		}
		entity.Reschedule(slot)
	}
	if req.OwnerName != nil || req.OwnerContact != nil {
		name := entity.OwnerName()
		contact := entity.OwnerContact()
		if req.OwnerName != nil {
			name = *req.OwnerName
		}
		if req.OwnerContact != nil {
			contact = *req.OwnerContact
		}
		if err := entity.Rename(name, contact); err != nil {
			return errs.Mark(err, ErrBookingValidation)
		}
	}

	unlock := b.fieldLocks.Lock(entity.FieldID())
	defer unlock()

	if err := b.ensureNoConflict(ctx, entity); err != nil {
		return err
	}

	if err := b.bookingRepo.Update(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (b *bookingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := b.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	b.logger.Info("booking deleted", slog.String("booking_id", id.String()))
	return nil
}

func (b *bookingUseCaseImpl) ensureNoConflict(ctx context.Context, candidate *booking.Booking) error {
	existing, err := b.bookingRepo.FindByField(ctx, candidate.FieldID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	other, err := booking.ConflictsAny(candidate, existing)
	if err != nil {
		return errs.Mark(err, ErrBookingValidation)
	}
	if other != nil {
		b.logger.Info("booking conflict rejected",
			slog.String("candidate_slot", candidate.Slot().String()),
			slog.String("existing_booking_id", other.ID().String()),
		)
		return ErrBookingConflict
	}
	return nil
}
