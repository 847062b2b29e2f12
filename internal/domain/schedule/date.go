package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeekday = errors.New("unknown weekday")
)

const dateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component. All date arithmetic
// in the scheduling core goes through this type so that month additions are
// calendar-correct everywhere.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t.UTC()}, nil
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func (d Date) String() string        { return d.t.Format(dateLayout) }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Year() int             { return d.t.Year() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// AddMonths adds calendar months and clamps to the last valid day of the
// target month: Jan 31 + 1 month = Feb 28 (29 in leap years), never Mar 3.
// time.AddDate normalizes overflow instead, which is exactly the rollover
// bug this type exists to prevent.
func (d Date) AddMonths(months int) Date {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := d.Day()
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return NewDate(first.Year(), first.Month(), day)
}

// FirstOfNextMonth returns the first day of the month after d.
func (d Date) FirstOfNextMonth() Date {
	return NewDate(d.Year(), d.Month(), 1).AddMonths(1)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateRange is an inclusive calendar window [From, To].
type DateRange struct {
	From Date
	To   Date
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// weekday names as stored by the legacy data: lowercase pt-BR, with the
// "-feira" suffix already stripped on most records but not all.
var weekdayNames = map[string]time.Weekday{
	"domingo": time.Sunday,
	"segunda": time.Monday,
	"terça":   time.Tuesday,
	"terca":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sábado":  time.Saturday,
	"sabado":  time.Saturday,
}

var canonicalWeekdayNames = [7]string{
	"domingo", "segunda", "terça", "quarta", "quinta", "sexta", "sábado",
}

// WeekdayName returns the canonical pt-BR name for a weekday.
func WeekdayName(wd time.Weekday) string {
	return canonicalWeekdayNames[wd]
}

// ParseWeekday normalizes the weekday representations found in stored data
// (numeric 0-6 with Sunday as 0, or pt-BR day names) to time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "-feira")
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return time.Weekday(s[0] - '0'), nil
	}
	if wd, ok := weekdayNames[s]; ok {
		return wd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}
