package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Occupancy is a booking projected onto one concrete calendar date. It is
// derived on demand from bookings and never persisted for recurring classes;
// caching these across requests is how the old per-screen copies drifted.
type Occupancy struct {
	FieldID   uuid.UUID
	BookingID uuid.UUID
	Date      Date
	Slot      Interval
}

// WeekdaySlot is the unexpanded form of a recurring booking: a weekday plus
// an interval, with no concrete date yet. Conflict checks support both forms
// because stored recurring records carry only the weekday.
type WeekdaySlot struct {
	FieldID   uuid.UUID
	BookingID uuid.UUID
	Weekday   time.Weekday
	Slot      Interval
}

// HasConflict reports whether the candidate slot collides with any existing
// occupancy on the same field and date. excludeID lets an edit ignore the
// occupancy produced by the booking being edited; pass uuid.Nil otherwise.
// Returns on the first hit.
func HasConflict(fieldID uuid.UUID, date Date, slot Interval, existing []Occupancy, excludeID uuid.UUID) bool {
	for _, occ := range existing {
		if excludeID != uuid.Nil && occ.BookingID == excludeID {
			continue
		}
		if occ.FieldID != fieldID || !occ.Date.Equal(date) {
			continue
		}
		if slot.Overlaps(occ.Slot) {
			return true
		}
	}
	return false
}

// SortOccupancies orders by start time, then booking ID for a stable listing.
func SortOccupancies(occs []Occupancy) {
	sort.Slice(occs, func(i, j int) bool {
		if occs[i].Slot.StartMinutes() != occs[j].Slot.StartMinutes() {
			return occs[i].Slot.StartMinutes() < occs[j].Slot.StartMinutes()
		}
		return occs[i].BookingID.String() < occs[j].BookingID.String()
	})
}

// HasWeekdayConflict is the weekday-form check used against recurring
// bookings that have not been expanded to dates.
func HasWeekdayConflict(fieldID uuid.UUID, weekday time.Weekday, slot Interval, existing []WeekdaySlot, excludeID uuid.UUID) bool {
	for _, ws := range existing {
		if excludeID != uuid.Nil && ws.BookingID == excludeID {
			continue
		}
		if ws.FieldID != fieldID || ws.Weekday != weekday {
			continue
		}
		if slot.Overlaps(ws.Slot) {
			return true
		}
	}
	return false
}
