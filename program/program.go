// Package program maps managed long-term care program names (PCA, CDPAS)
// onto the schedule engine. It owns the wire-level vocabulary: program and
// unit identifiers, weekday names, and display labels.
package program

import (
	"fmt"
	"strings"

	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/schedule"
)

// =============================================================================
// PROGRAM - Which authorization program a calculation belongs to
// =============================================================================

type Program string

const (
	// PCA authorizes a single weekly attendance pattern.
	PCA Program = "pca"

	// PCAAlternating authorizes a two-week Week A / Week B rotation.
	PCAAlternating Program = "pca_alt"

	// CDPAS authorizes a flat hours-per-week figure, prorated over the span.
	CDPAS Program = "cdpas"
)

// Mode returns the engine mode backing the program.
func (p Program) Mode() schedule.Mode {
	switch p {
	case PCAAlternating:
		return schedule.ModeAlternating
	case CDPAS:
		return schedule.ModeProrated
	default:
		return schedule.ModeSingle
	}
}

func (p Program) DisplayName() string {
	switch p {
	case PCA:
		return "PCA (single pattern)"
	case PCAAlternating:
		return "PCA (alternating weeks)"
	case CDPAS:
		return "CDPAS (weekly hours)"
	default:
		return string(p)
	}
}

// ParseProgram resolves a wire identifier to a Program.
func ParseProgram(s string) (Program, error) {
	switch Program(strings.ToLower(strings.TrimSpace(s))) {
	case PCA:
		return PCA, nil
	case PCAAlternating:
		return PCAAlternating, nil
	case CDPAS:
		return CDPAS, nil
	}
	return "", fmt.Errorf("unknown program %q (expected pca, pca_alt, or cdpas)", s)
}

// =============================================================================
// WEEKDAY NAMES
// =============================================================================

var weekdayNames = map[string]schedule.Weekday{
	"mon": schedule.Monday, "monday": schedule.Monday,
	"tue": schedule.Tuesday, "tuesday": schedule.Tuesday,
	"wed": schedule.Wednesday, "wednesday": schedule.Wednesday,
	"thu": schedule.Thursday, "thursday": schedule.Thursday,
	"fri": schedule.Friday, "friday": schedule.Friday,
	"sat": schedule.Saturday, "saturday": schedule.Saturday,
	"sun": schedule.Sunday, "sunday": schedule.Sunday,
}

// ParseWeekday resolves a weekday name ("mon" or "monday", any case).
func ParseWeekday(s string) (schedule.Weekday, error) {
	if w, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// =============================================================================
// UNIT NAMES AND LABELS
// =============================================================================

// ParseUnit resolves a conversion unit identifier. The intake spreadsheets
// this replaces used "15 mins" and "Per diem", so those spellings are
// accepted alongside the canonical identifiers.
func ParseUnit(s string) (schedule.Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hourly":
		return schedule.UnitHourly, nil
	case "quarter_hour", "15min", "15 mins":
		return schedule.UnitQuarterHour, nil
	case "per_diem", "per diem":
		return schedule.UnitPerDiem, nil
	}
	return "", &schedule.UnknownUnitError{Unit: schedule.Unit(s)}
}

// UnitLabel returns the display caption for a unit's total.
func UnitLabel(u schedule.Unit) string {
	switch u {
	case schedule.UnitHourly:
		return "Total hours"
	case schedule.UnitQuarterHour:
		return "Total 15-min units"
	case schedule.UnitPerDiem:
		return "Total per-diems (days)"
	default:
		return "Total"
	}
}

// Units returns the valid conversion units in display order.
func Units() []schedule.Unit {
	return []schedule.Unit{schedule.UnitHourly, schedule.UnitQuarterHour, schedule.UnitPerDiem}
}
