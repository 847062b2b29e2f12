package queries

import (
	"context"

	"campo-agenda/internal/domain/billing"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/domain/student"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/clock"
	"campo-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrStudentNotFound = errs.New("student not found")

type StudentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StudentView, error)
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*StudentView, error)
	FindPaymentsByStudent(ctx context.Context, studentID uuid.UUID) ([]*StudentPaymentView, error)
}

type StudentStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*student.Student, error)
}

type StudentPaymentStore interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*student.Payment, error)
}

type StudentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StudentView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*StudentView, error)
	ListPayments(ctx context.Context, studentID uuid.UUID) ([]*StudentPaymentView, error)
	BillingStatus(ctx context.Context, studentID uuid.UUID) (*StudentBillingView, error)
}

type studentQueriesImpl struct {
	views    StudentViewRepo
	bookings BookingViewRepo
	students StudentStore
	payments StudentPaymentStore
	clock    clock.Clock
}

func NewStudentQueries(
	views StudentViewRepo,
	bookings BookingViewRepo,
	students StudentStore,
	payments StudentPaymentStore,
	clock clock.Clock,
) StudentQueries {
	return &studentQueriesImpl{
		views:    views,
		bookings: bookings,
		students: students,
		payments: payments,
		clock:    clock,
	}
}

func (q *studentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StudentView, error) {
	view, err := q.views.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStudentNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *studentQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*StudentView, error) {
	if _, err := q.bookings.FindByID(ctx, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	views, err := q.views.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *studentQueriesImpl) ListPayments(ctx context.Context, studentID uuid.UUID) ([]*StudentPaymentView, error) {
	if _, err := q.views.FindByID(ctx, studentID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStudentNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	views, err := q.views.FindPaymentsByStudent(ctx, studentID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

// BillingStatus runs the same monthly cycle as booking billing, but anchored
// to the student's enrollment date and fed by the student's own payments.
func (q *studentQueriesImpl) BillingStatus(ctx context.Context, studentID uuid.UUID) (*StudentBillingView, error) {
	entity, err := q.students.FindByID(ctx, studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStudentNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	payments, err := q.payments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	records := make([]billing.PaymentRecord, len(payments))
	for i, p := range payments {
		records[i] = p.Record()
	}

	anchor := schedule.DateOf(entity.CreatedAt())
	today := schedule.DateOf(q.clock.Now())

	status, err := billing.Cycle(anchor, records, today)
	if err != nil {
		return nil, errs.Mark(err, ErrBillingIndeterminate)
	}

	return &StudentBillingView{
		StudentID: studentID,
		NextDue:   status.NextDue.String(),
		State:     string(status.State),
	}, nil
}
