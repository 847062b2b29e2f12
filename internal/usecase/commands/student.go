package commands

import (
	"context"
	"log/slog"

	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/domain/student"
	reqdto "campo-agenda/internal/handler/dto/request"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/clock"
	"campo-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStudentNotFound   = errs.New("student not found")
	ErrStudentValidation = errs.New("student validation error")
)

type StudentCommands interface {
	Enroll(ctx context.Context, bookingID uuid.UUID, req reqdto.EnrollStudentRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateStudentRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	RegisterPayment(ctx context.Context, studentID uuid.UUID, req reqdto.RegisterPaymentRequest) (uuid.UUID, error)
}

type studentUseCaseImpl struct {
	studentRepo StudentRepository
	bookingRepo BookingRepository
	paymentRepo StudentPaymentRepository
	clock       clock.Clock
	logger      *slog.Logger
}

func NewStudentUseCase(
	studentRepo StudentRepository,
	bookingRepo BookingRepository,
	paymentRepo StudentPaymentRepository,
	clock clock.Clock,
	logger *slog.Logger,
) StudentCommands {
	return &studentUseCaseImpl{
		studentRepo: studentRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		clock:       clock,
		logger:      logger,
	}
}

func (u *studentUseCaseImpl) Enroll(ctx context.Context, bookingID uuid.UUID, req reqdto.EnrollStudentRequest) (uuid.UUID, error) {
	class, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrBookingNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := student.NewStudent(class, req.Name, req.GuardianName, req.GuardianContact, req.Age, u.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStudentValidation)
	}

	if err := u.studentRepo.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.logger.Info("student enrolled",
		slog.String("student_id", entity.ID().String()),
		slog.String("booking_id", bookingID.String()),
	)
	return entity.ID(), nil
}

func (u *studentUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateStudentRequest) error {
	entity, err := u.studentRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStudentNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	name := entity.Name()
	guardianName := entity.GuardianName()
	guardianContact := entity.GuardianContact()
	age := entity.Age()
	if req.Name != nil {
		name = *req.Name
	}
	if req.GuardianName != nil {
		guardianName = *req.GuardianName
	}
	if req.GuardianContact != nil {
		guardianContact = *req.GuardianContact
	}
	if req.Age != nil {
		age = *req.Age
	}
	if err := entity.Update(name, guardianName, guardianContact, age); err != nil {
		return errs.Mark(err, ErrStudentValidation)
	}

	if err := u.studentRepo.Update(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *studentUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.studentRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStudentNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	u.logger.Info("student removed", slog.String("student_id", id.String()))
	return nil
}

func (u *studentUseCaseImpl) RegisterPayment(ctx context.Context, studentID uuid.UUID, req reqdto.RegisterPaymentRequest) (uuid.UUID, error) {
	entity, err := u.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrStudentNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	paidOn, err := schedule.ParseDate(req.PaidOn)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPaymentValidation)
	}

	payment, err := student.NewPayment(entity.ID(), req.AmountCents, paidOn, u.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPaymentValidation)
	}

	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.logger.Info("student payment registered",
		slog.String("student_id", studentID.String()),
		slog.Int64("amount_cents", req.AmountCents),
	)
	return payment.ID(), nil
}
