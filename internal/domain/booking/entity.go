package booking

import (
	"errors"
	"strings"
	"time"

	"campo-agenda/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyOwnerName   = errors.New("owner name cannot be empty")
	ErrEmptyOwnerPhone  = errors.New("owner contact cannot be empty")
	ErrMissingAnchor    = errors.New("booking anchor date is required")
	ErrInvalidClass     = errors.New("invalid recurrence class")
	ErrBookingNotActive = errors.New("booking is not active")
)

// Booking is the source of truth for everything the scheduling core derives:
// occupancies, free slots and billing cycles are all recomputed from it on
// every query.
type Booking struct {
	id           uuid.UUID
	fieldID      uuid.UUID
	class        schedule.Class
	anchor       schedule.Date
	slot         schedule.Interval
	ownerName    string
	ownerContact string
	createdAt    time.Time
	updatedAt    time.Time
}

func ReconstructBooking(
	id, fieldID uuid.UUID,
	class schedule.Class,
	anchor schedule.Date,
	slot schedule.Interval,
	ownerName, ownerContact string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		fieldID:      fieldID,
		class:        class,
		anchor:       anchor,
		slot:         slot,
		ownerName:    ownerName,
		ownerContact: ownerContact,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) FieldID() uuid.UUID      { return b.fieldID }
func (b *Booking) Class() schedule.Class   { return b.class }
func (b *Booking) Anchor() schedule.Date   { return b.anchor }
func (b *Booking) Slot() schedule.Interval { return b.slot }
func (b *Booking) OwnerName() string       { return b.ownerName }
func (b *Booking) OwnerContact() string    { return b.ownerContact }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }

// Weekday is derived from the anchor date, never stored. The legacy records
// kept free-text day names that drifted between screens; deriving kills that
// class of mismatch.
func (b *Booking) Weekday() time.Weekday { return b.anchor.Weekday() }

// Reschedule moves the booking to a new slot. Conflict checking is the
// caller's job; the entity only guards its own invariants.
func (b *Booking) Reschedule(slot schedule.Interval) {
	b.slot = slot
}

func (b *Booking) Rename(ownerName, ownerContact string) error {
	ownerName = strings.TrimSpace(ownerName)
	ownerContact = strings.TrimSpace(ownerContact)
	if ownerName == "" {
		return ErrEmptyOwnerName
	}
	if ownerContact == "" {
		return ErrEmptyOwnerPhone
	}
	b.ownerName = ownerName
	b.ownerContact = ownerContact
	return nil
}

// OccupancyOn projects the booking onto one date. The second return is false
// when the booking does not occupy that date.
func (b *Booking) OccupancyOn(date schedule.Date) (schedule.Occupancy, bool, error) {
	hit, err := schedule.Occupies(b.anchor, b.class, date)
	if err != nil || !hit {
		return schedule.Occupancy{}, false, err
	}
	return schedule.Occupancy{
		FieldID:   b.fieldID,
		BookingID: b.id,
		Date:      date,
		Slot:      b.slot,
	}, true, nil
}

// Occupancies expands the booking over a query window.
func (b *Booking) Occupancies(window schedule.DateRange) ([]schedule.Occupancy, error) {
	dates, err := schedule.Expand(b.anchor, b.class, window)
	if err != nil {
		return nil, err
	}
	occs := make([]schedule.Occupancy, len(dates))
	for i, d := range dates {
		occs[i] = schedule.Occupancy{
			FieldID:   b.fieldID,
			BookingID: b.id,
			Date:      d,
			Slot:      b.slot,
		}
	}
	return occs, nil
}

// WeekdaySlot is the unexpanded projection used by weekday-form conflict
// checks.
func (b *Booking) WeekdaySlot() schedule.WeekdaySlot {
	return schedule.WeekdaySlot{
		FieldID:   b.fieldID,
		BookingID: b.id,
		Weekday:   b.Weekday(),
		Slot:      b.slot,
	}
}
