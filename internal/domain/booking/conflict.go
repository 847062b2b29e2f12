package booking

import "campo-agenda/internal/domain/schedule"

// Conflicts reports whether two bookings can ever claim the same field time.
//
// Recurring against recurring compares by weekday: two standing rentals on
// the same weekday with overlapping slots will collide on some date even if
// their terms only meet briefly, and the desk treats that as a conflict.
// Any pair involving a one-off is decided on the one-off's concrete date.
// Field, slot and self filtering all live in the schedule detectors so that
// no caller re-derives them.
func Conflicts(a, b *Booking) (bool, error) {
	if a.class.IsRecurring() && b.class.IsRecurring() {
		hit := schedule.HasWeekdayConflict(
			a.fieldID, a.Weekday(), a.slot,
			[]schedule.WeekdaySlot{b.WeekdaySlot()},
			a.id,
		)
		return hit, nil
	}

	oneOff, other := a, b
	if a.class.IsRecurring() {
		oneOff, other = b, a
	}
	occ, hit, err := other.OccupancyOn(oneOff.anchor)
	if err != nil || !hit {
		return false, err
	}
	return schedule.HasConflict(
		oneOff.fieldID, oneOff.anchor, oneOff.slot,
		[]schedule.Occupancy{occ},
		oneOff.id,
	), nil
}

// ConflictsAny scans existing bookings and returns the first collision.
func ConflictsAny(candidate *Booking, existing []*Booking) (*Booking, error) {
	for _, other := range existing {
		hit, err := Conflicts(candidate, other)
		if err != nil {
			return nil, err
		}
		if hit {
			return other, nil
		}
	}
	return nil, nil
}
