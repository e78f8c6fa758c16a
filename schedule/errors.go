/*
errors.go - Centralized error types for the schedule engine

PURPOSE:
  All error kinds in one place. Every failure in this package is an
  input-validation failure: the caller fixes the input and retries.
  Nothing here is transient, and a calculation never partially succeeds.

ERROR KINDS:
  1. Invalid range - span start is after span end
  2. No weekday selected - a pattern (or both alternating patterns) is empty
  3. Unknown unit - conversion unit outside the enumerated set

USAGE:
  Callers match with errors.Is:

    if errors.Is(err, schedule.ErrInvalidRange) {
        // prompt for corrected dates
    }

SEE ALSO:
  - date.go: NewDateSpan returns InvalidRangeError
  - pattern.go: model validation returns ErrNoWeekdaySelected
  - unit.go: Convert returns UnknownUnitError
*/
package schedule

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when a span's start date is after its end date.
	ErrInvalidRange = errors.New("invalid range: start after end")

	// ErrNoWeekdaySelected is returned when a pattern model has no active
	// weekday in any bucket. Selection gates participation, so an empty
	// selection would make every total trivially zero.
	ErrNoWeekdaySelected = errors.New("no weekday selected")

	// ErrUnknownUnit is returned for a conversion unit outside the
	// enumerated set (hourly, quarter-hour, per-diem).
	ErrUnknownUnit = errors.New("unknown conversion unit")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidRangeError reports the offending bounds.
type InvalidRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s is after end %s", e.Start, e.End)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// UnknownUnitError reports the unrecognized unit value.
type UnknownUnitError struct {
	Unit Unit
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown conversion unit %q", string(e.Unit))
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
// Every schedule error currently is; the helper exists so HTTP layers can
// map errors to status codes without enumerating sentinels themselves.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrNoWeekdaySelected) ||
		errors.Is(err, ErrUnknownUnit)
}
