/*
pattern.go - Weekly attendance patterns

PURPOSE:
  A Pattern pairs a weekday selection with hours-per-day rates. Selection
  is the gate, hours is the rate: a weekday outside the selection
  contributes zero count and zero hours no matter what rate was entered
  for it. The zeroing happens once, at construction, so downstream code
  never checks selection membership.

PATTERN MODEL:
  Single mode uses one pattern. Alternating mode uses two independent
  patterns (Week A / Week B) assigned by week parity; either may be empty
  as long as the other is not.

SEE ALSO:
  - engine.go: consumes PatternModel per mode
  - counter.go: produces the per-weekday counts patterns are priced against
*/
package schedule

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// SELECTION AND HOURS
// =============================================================================

// WeekdaySelection is the set of weekdays participating in a pattern.
type WeekdaySelection map[Weekday]bool

// NewWeekdaySelection builds a selection from the given weekdays.
func NewWeekdaySelection(days ...Weekday) WeekdaySelection {
	sel := make(WeekdaySelection, len(days))
	for _, d := range days {
		if d.Valid() {
			sel[d] = true
		}
	}
	return sel
}

func (s WeekdaySelection) Contains(w Weekday) bool { return s[w] }

func (s WeekdaySelection) IsEmpty() bool { return len(s) == 0 }

// HoursByWeekday maps a weekday to its scheduled hours per day.
type HoursByWeekday map[Weekday]decimal.Decimal

// =============================================================================
// PATTERN - Selection + effective hours
// =============================================================================

// Pattern is an immutable weekly attendance pattern. Hours for weekdays
// outside the selection are forced to zero at construction.
type Pattern struct {
	selection WeekdaySelection
	hours     [7]decimal.Decimal
}

// NewPattern builds a pattern from a selection and raw hours entries.
func NewPattern(selection WeekdaySelection, hours HoursByWeekday) Pattern {
	p := Pattern{selection: make(WeekdaySelection, len(selection))}
	for w := range selection {
		if !w.Valid() || !selection[w] {
			continue
		}
		p.selection[w] = true
		if h, ok := hours[w]; ok {
			p.hours[w] = h
		}
	}
	return p
}

// UniformPattern applies the same hours-per-day rate to every selected weekday.
func UniformPattern(selection WeekdaySelection, hoursPerDay decimal.Decimal) Pattern {
	hours := make(HoursByWeekday, len(selection))
	for w := range selection {
		hours[w] = hoursPerDay
	}
	return NewPattern(selection, hours)
}

// EmptyPattern is a pattern with nothing selected. Valid as one side of an
// alternating model, invalid on its own.
func EmptyPattern() Pattern {
	return Pattern{selection: WeekdaySelection{}}
}

func (p Pattern) Selected(w Weekday) bool { return p.selection.Contains(w) }

func (p Pattern) IsEmpty() bool { return p.selection.IsEmpty() }

// Hours returns the effective hours for a weekday: zero unless selected.
func (p Pattern) Hours(w Weekday) decimal.Decimal {
	if !w.Valid() || !p.selection.Contains(w) {
		return decimal.Zero
	}
	return p.hours[w]
}

// SelectedWeekdays returns the selection in Monday..Sunday order.
func (p Pattern) SelectedWeekdays() []Weekday {
	var out []Weekday
	for _, w := range AllWeekdays() {
		if p.selection.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}

// =============================================================================
// PATTERN MODEL - One or two patterns, per mode
// =============================================================================

// PatternModel holds the pattern(s) for a calculation. Use SinglePattern or
// AlternatingPatterns; the zero value fails validation.
type PatternModel struct {
	A           Pattern
	B           Pattern
	Alternating bool
}

// SinglePattern wraps one pattern for single-pattern mode.
func SinglePattern(p Pattern) PatternModel {
	return PatternModel{A: p}
}

// AlternatingPatterns pairs Week A and Week B patterns.
func AlternatingPatterns(a, b Pattern) PatternModel {
	return PatternModel{A: a, B: b, Alternating: true}
}

// Validate enforces the non-empty-selection invariant. Alternating models
// need at least one non-empty side; single models need their one pattern
// non-empty.
func (m PatternModel) Validate() error {
	if m.Alternating {
		if m.A.IsEmpty() && m.B.IsEmpty() {
			return ErrNoWeekdaySelected
		}
		return nil
	}
	if m.A.IsEmpty() {
		return ErrNoWeekdaySelected
	}
	return nil
}
