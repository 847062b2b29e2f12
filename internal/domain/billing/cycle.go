// Package billing computes due dates and payment states for rental items.
// The cycle is anchored to the day-of-month the item was registered on and
// advances with each recorded payment.
package billing

import (
	"errors"
	"time"

	"campo-agenda/internal/domain/schedule"
)

// ErrIndeterminate means the inputs cannot support a verdict (missing anchor
// or payment timestamp). Callers must surface it as "unknown" rather than
// guessing paid or overdue.
var ErrIndeterminate = errors.New("billing state cannot be determined")

type State string

const (
	// StateNoPaymentDue: no payment recorded yet and the first due date is
	// still in the future.
	StateNoPaymentDue State = "no_payment_due_yet"
	// StatePaid: the latest payment covers the current cycle.
	StatePaid State = "paid"
	// StateOverdue: the current cycle's due date has passed.
	StateOverdue State = "overdue"
)

// PaymentRecord is the slice of a stored payment that billing cares about.
// CreatedAt (when the payment was registered) drives the cycle, not PaidOn:
// a payment backdated by the desk still settles the cycle it was entered in.
type PaymentRecord struct {
	PaidOn    schedule.Date
	CreatedAt time.Time
}

type Status struct {
	NextDue schedule.Date
	State   State
}

// Cycle computes the next due date and payment state for an item registered
// on anchor, given its payment history and today's date.
//
// The due day is the anchor's day-of-month, clamped into months that are too
// short (a day-31 anchor falls due Feb 28, or Feb 29 in leap years). The
// base of the current cycle is the anchor itself until the first payment,
// then the registration date of the most recent payment.
func Cycle(anchor schedule.Date, payments []PaymentRecord, today schedule.Date) (Status, error) {
	if anchor.IsZero() || today.IsZero() {
		return Status{}, ErrIndeterminate
	}

	base := anchor
	hasPayment := false
	if latest, ok := latestPayment(payments); ok {
		if latest.CreatedAt.IsZero() {
			return Status{}, ErrIndeterminate
		}
		base = schedule.DateOf(latest.CreatedAt)
		hasPayment = true
	}

	nextDue := dueDateAfter(base, anchor.Day())

	switch {
	case today.After(nextDue):
		return Status{NextDue: nextDue, State: StateOverdue}, nil
	case hasPayment:
		return Status{NextDue: nextDue, State: StatePaid}, nil
	default:
		return Status{NextDue: nextDue, State: StateNoPaymentDue}, nil
	}
}

// dueDateAfter shifts base to the first day of the following month, then
// sets the day to min(anchorDay, last day of that month).
func dueDateAfter(base schedule.Date, anchorDay int) schedule.Date {
	first := base.FirstOfNextMonth()
	last := first.AddMonths(1).AddDays(-1).Day()
	day := anchorDay
	if day > last {
		day = last
	}
	return schedule.NewDate(first.Year(), first.Month(), day)
}

// latestPayment picks the most recently registered payment, by CreatedAt.
func latestPayment(payments []PaymentRecord) (PaymentRecord, bool) {
	var latest PaymentRecord
	found := false
	for _, p := range payments {
		if !found || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
			found = true
		}
	}
	return latest, found
}
