package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTime     = errors.New("time must be in 24h HH:MM format")
	ErrInvalidInterval = errors.New("interval start must be before end")
)

// Interval is a time-of-day range [start, end), stored as minutes from
// midnight. The HH:MM string form is the persistence contract and is only
// touched at the boundary.
type Interval struct {
	start int
	end   int
}

func NewInterval(start, end string) (Interval, error) {
	s, err := parseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: s, end: e}, nil
}

func (i Interval) Start() string { return formatClock(i.start) }
func (i Interval) End() string   { return formatClock(i.end) }

func (i Interval) StartMinutes() int { return i.start }
func (i Interval) EndMinutes() int   { return i.end }

func (i Interval) Duration() time.Duration {
	return time.Duration(i.end-i.start) * time.Minute
}

func (i Interval) IsZero() bool {
	return i.start == 0 && i.end == 0
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (10:00-11:00 vs 11:00-12:00) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.start < other.end && other.start < i.end
}

func (i Interval) String() string {
	return i.Start() + " - " + i.End()
}

// parseClock accepts strict "HH:MM" only, mirroring the format already used
// by the persistence layer.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	for _, idx := range []int{0, 1, 3, 4} {
		if s[idx] < '0' || s[idx] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return hh*60 + mm, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
