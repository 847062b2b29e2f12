package student

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

// Payment is a monthly fee paid for one student. The student's billing cycle
// is anchored to the enrollment date, not the class booking's cycle.
type Payment struct {
	id          uuid.UUID
	studentID   uuid.UUID
	amountCents int64
	paidOn      schedule.Date
	createdAt   time.Time
}

func NewPayment(studentID uuid.UUID, amountCents int64, paidOn schedule.Date, now time.Time) (*Payment, error) {
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	if paidOn.IsZero() {
		return nil, ErrMissingPaidOn
	}
	return &Payment{
		id:          uuid.New(),
		studentID:   studentID,
		amountCents: amountCents,
		paidOn:      paidOn,
		createdAt:   now,
	}, nil
}

func ReconstructPayment(id, studentID uuid.UUID, amountCents int64, paidOn schedule.Date, createdAt time.Time) *Payment {
	return &Payment{
		id:          id,
		studentID:   studentID,
		amountCents: amountCents,
		paidOn:      paidOn,
		createdAt:   createdAt,
	}
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) StudentID() uuid.UUID   { return p.studentID }
func (p *Payment) AmountCents() int64     { return p.amountCents }
func (p *Payment) PaidOn() schedule.Date  { return p.paidOn }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }

func (p *Payment) Record() billing.PaymentRecord {
	return billing.PaymentRecord{PaidOn: p.paidOn, CreatedAt: p.createdAt}
}
