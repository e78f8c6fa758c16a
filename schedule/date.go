package schedule

import (
	"fmt"
	"time"
)

// =============================================================================
// WEEKDAY - ISO weekday, Monday = 0 .. Sunday = 6
// =============================================================================

// Weekday follows the ISO convention (Monday first). This differs from
// time.Weekday, which starts the week on Sunday; use WeekdayOf to convert.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayLabels[w]
}

func (w Weekday) Valid() bool { return w >= Monday && w <= Sunday }

// WeekdayOf converts from time.Weekday (Sunday = 0) to the ISO numbering.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// AllWeekdays returns the seven weekdays in Monday..Sunday order.
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// =============================================================================
// DATE - Naive calendar date (no timezone, day granularity)
// =============================================================================

// Date is a plain calendar date. The embedded time.Time is always UTC
// midnight, so Dates compare and subtract exactly.
type Date struct {
	t time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.t.After(other.t) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.t.Before(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) Weekday() Weekday  { return WeekdayOf(d.t) }
func (d Date) IsZero() bool      { return d.t.IsZero() }
func (d Date) Time() time.Time   { return d.t }

// MondayOfWeek returns the Monday of the Mon-Sun week containing d.
func (d Date) MondayOfWeek() Date {
	return d.AddDays(-int(d.Weekday()))
}

func (d Date) String() string { return d.t.Format("2006-01-02") }

// DaysBetween returns the signed number of days from one date to another.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// =============================================================================
// DATE SPAN - Inclusive calendar range
// =============================================================================

// DateSpan is an inclusive [Start, End] range. Construct via NewDateSpan so
// the Start <= End invariant always holds.
type DateSpan struct {
	Start Date
	End   Date
}

// NewDateSpan builds a span, rejecting a start after the end.
func NewDateSpan(start, end Date) (DateSpan, error) {
	if start.After(end) {
		return DateSpan{}, &InvalidRangeError{Start: start, End: end}
	}
	return DateSpan{Start: start, End: end}, nil
}

// Validate re-checks the range invariant. NewDateSpan already enforces it,
// but spans can arrive as literals from callers that skipped the
// constructor, so the engine re-validates before computing.
func (s DateSpan) Validate() error {
	if s.Start.After(s.End) {
		return &InvalidRangeError{Start: s.Start, End: s.End}
	}
	return nil
}

// TotalDays returns the inclusive day count.
func (s DateSpan) TotalDays() int {
	return DaysBetween(s.Start, s.End) + 1
}

// Days returns every date in the span, in order. The sequence is derived
// from the bounds alone, so callers can iterate it as many times as needed.
func (s DateSpan) Days() []Date {
	days := make([]Date, 0, s.TotalDays())
	for current := s.Start; current.BeforeOrEqual(s.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// Contains returns true if the date falls within the span.
func (s DateSpan) Contains(d Date) bool {
	return d.AfterOrEqual(s.Start) && d.BeforeOrEqual(s.End)
}

// AnchorMonday returns the Monday of the week containing the span's start.
// Alternating-week bucketing is anchored here, so the anchor follows the
// span and is never cached across calculations.
func (s DateSpan) AnchorMonday() Date {
	return s.Start.MondayOfWeek()
}

func (s DateSpan) String() string {
	return "[" + s.Start.String() + ", " + s.End.String() + "]"
}
