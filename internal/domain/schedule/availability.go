package schedule

import "time"

// DefaultSlotDuration matches the fixed 90-minute tiling the rental desk
// has always offered.
const DefaultSlotDuration = 90 * time.Minute

// FreeSlots tiles the operating hours into consecutive slotDuration-long
// candidates starting at hours.Start() and keeps the ones that do not
// overlap any occupied interval. A trailing candidate shorter than
// slotDuration is dropped; only full-length slots are offered. Output is
// chronological and fully determined by the inputs.
func FreeSlots(hours Interval, occupied []Interval, slotDuration time.Duration) []Interval {
	if slotDuration <= 0 {
		slotDuration = DefaultSlotDuration
	}
	step := int(slotDuration / time.Minute)

	var free []Interval
	for start := hours.StartMinutes(); start+step <= hours.EndMinutes(); start += step {
		candidate := Interval{start: start, end: start + step}
		if overlapsAny(candidate, occupied) {
			continue
		}
		free = append(free, candidate)
	}
	return free
}

func overlapsAny(candidate Interval, occupied []Interval) bool {
	for _, occ := range occupied {
		if candidate.Overlaps(occ) {
			return true
		}
	}
	return false
}
