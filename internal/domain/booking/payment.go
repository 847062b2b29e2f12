package booking

import (
	"errors"
	"time"

	"campo-agenda/internal/domain/billing"
	"campo-agenda/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrNegativeAmount = errors.New("payment amount cannot be negative")
	ErrMissingPaidOn  = errors.New("payment date is required")
)

// Payment is one settled installment for a booking. History is append-only;
// the billing cycle only looks at the most recently registered one.
type Payment struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	amountCents int64
	paidOn      schedule.Date
	createdAt   time.Time
}

func NewPayment(bookingID uuid.UUID, amountCents int64, paidOn schedule.Date, now time.Time) (*Payment, error) {
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	if paidOn.IsZero() {
		return nil, ErrMissingPaidOn
	}
	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		amountCents: amountCents,
		paidOn:      paidOn,
		createdAt:   now,
	}, nil
}

func ReconstructPayment(id, bookingID uuid.UUID, amountCents int64, paidOn schedule.Date, createdAt time.Time) *Payment {
	return &Payment{
		id:          id,
		bookingID:   bookingID,
		amountCents: amountCents,
		paidOn:      paidOn,
		createdAt:   createdAt,
	}
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) BookingID() uuid.UUID   { return p.bookingID }
func (p *Payment) AmountCents() int64     { return p.amountCents }
func (p *Payment) PaidOn() schedule.Date  { return p.paidOn }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }

// Record converts to the slice billing needs.
func (p *Payment) Record() billing.PaymentRecord {
	return billing.PaymentRecord{PaidOn: p.paidOn, CreatedAt: p.createdAt}
}
