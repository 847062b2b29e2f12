package schedule

import "errors"

var ErrUnknownClass = errors.New("unknown recurrence class")

// Class tells how a booking occupies the calendar. The string values are the
// legacy persistence contract ("tipo" in the stored records).
type Class string

const (
	// ClassSingle occupies exactly the anchor date.
	ClassSingle Class = "avulso"
	// ClassMonthly occupies the anchor's weekday every week for one
	// calendar month starting at the anchor.
	ClassMonthly Class = "mensal"
	// ClassAnnual is the weekly rule over twelve calendar months.
	ClassAnnual Class = "anual"
)

func (c Class) String() string {
	return string(c)
}

func (c Class) IsValid() bool {
	switch c {
	case ClassSingle, ClassMonthly, ClassAnnual:
		return true
	default:
		return false
	}
}

func (c Class) IsRecurring() bool {
	return c == ClassMonthly || c == ClassAnnual
}

// months returns the recurrence horizon in calendar months, 0 for single.
func (c Class) months() int {
	switch c {
	case ClassMonthly:
		return 1
	case ClassAnnual:
		return 12
	default:
		return 0
	}
}

// Expand produces the concrete dates a booking anchored at anchor occupies
// within window, in chronological order. It is a pure function of its
// inputs: same arguments, same slice, no iterator state.
//
// Recurring classes yield every date on the anchor's weekday from the anchor
// up to and including anchor plus the class horizon in calendar months
// (end-of-month clamped, see Date.AddMonths).
func Expand(anchor Date, class Class, window DateRange) ([]Date, error) {
	if anchor.IsZero() {
		return nil, ErrInvalidDate
	}
	switch class {
	case ClassSingle:
		if window.Contains(anchor) {
			return []Date{anchor}, nil
		}
		return nil, nil
	case ClassMonthly, ClassAnnual:
		end := anchor.AddMonths(class.months())
		var dates []Date
		for d := anchor; !d.After(end); d = d.AddDays(7) {
			if window.Contains(d) {
				dates = append(dates, d)
			}
		}
		return dates, nil
	default:
		return nil, ErrUnknownClass
	}
}

// Occupies reports whether the booking described by (anchor, class) lands on
// the given date, without materializing the full expansion.
func Occupies(anchor Date, class Class, date Date) (bool, error) {
	if anchor.IsZero() {
		return false, ErrInvalidDate
	}
	switch class {
	case ClassSingle:
		return anchor.Equal(date), nil
	case ClassMonthly, ClassAnnual:
		if date.Weekday() != anchor.Weekday() || date.Before(anchor) {
			return false, nil
		}
		return !date.After(anchor.AddMonths(class.months())), nil
	default:
		return false, ErrUnknownClass
	}
}
