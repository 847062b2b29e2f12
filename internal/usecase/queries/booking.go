package queries

import (
	"context"

	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByField(ctx context.Context, fieldID uuid.UUID) ([]*BookingView, error)
}

type PaymentViewRepo interface {
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context) ([]*BookingView, error)
	ListByField(ctx context.Context, fieldID uuid.UUID) ([]*BookingView, error)
	ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
}

type bookingQueriesImpl struct {
	bookings BookingViewRepo
	payments PaymentViewRepo
}

func NewBookingQueries(bookings BookingViewRepo, payments PaymentViewRepo) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, payments: payments}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingView, error) {
	views, err := q.bookings.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListByField(ctx context.Context, fieldID uuid.UUID) ([]*BookingView, error) {
	views, err := q.bookings.FindByField(ctx, fieldID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error) {
	if _, err := q.bookings.FindByID(ctx, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	views, err := q.payments.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
