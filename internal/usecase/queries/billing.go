package queries

import (
	"context"

	"campo-agenda/internal/domain/billing"
	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/clock"
	"campo-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBillingIndeterminate = errs.New("billing status indeterminate")

type PaymentStore interface {
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*booking.Payment, error)
}

type BillingQueries interface {
	Status(ctx context.Context, bookingID uuid.UUID) (*BillingStatusView, error)
}

type billingQueriesImpl struct {
	bookings BookingStore
	payments PaymentStore
	clock    clock.Clock
}

func NewBillingQueries(bookings BookingStore, payments PaymentStore, clock clock.Clock) BillingQueries {
	return &billingQueriesImpl{bookings: bookings, payments: payments, clock: clock}
}

// Status recomputes the cycle from the booking's creation date and its
// payment history. Nothing is stored; the answer changes as today does.
func (q *billingQueriesImpl) Status(ctx context.Context, bookingID uuid.UUID) (*BillingStatusView, error) {
	entity, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	payments, err := q.payments.ListByBooking(ctx, bookingID)
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

	return &BillingStatusView{
		BookingID: bookingID,
		NextDue:   status.NextDue.String(),
		State:     string(status.State),
	}, nil
}
