package program

import (
	"github.com/shopspring/decimal"

	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/schedule"
)

// =============================================================================
// PRESET PATTERNS - Common authorization shapes
// =============================================================================

// Preset is a named pattern shape intake staff can start from instead of
// entering every weekday by hand.
type Preset struct {
	ID          string
	Name        string
	Description string
	Weekdays    []schedule.Weekday
	HoursPerDay decimal.Decimal
}

// Pattern materializes the preset as a uniform-hours pattern.
func (p Preset) Pattern() schedule.Pattern {
	return schedule.UniformPattern(schedule.NewWeekdaySelection(p.Weekdays...), p.HoursPerDay)
}

// StandardWorkweek is Monday-Friday at 8 hours per day, the default shape
// for most PCA authorizations.
func StandardWorkweek() schedule.Pattern {
	return standardWorkweek.Pattern()
}

var standardWorkweek = Preset{
	ID:          "standard-workweek",
	Name:        "Standard workweek",
	Description: "Monday through Friday, 8 hours per day",
	Weekdays: []schedule.Weekday{
		schedule.Monday, schedule.Tuesday, schedule.Wednesday,
		schedule.Thursday, schedule.Friday,
	},
	HoursPerDay: decimal.NewFromInt(8),
}

var presets = []Preset{
	standardWorkweek,
	{
		ID:          "half-days",
		Name:        "Weekday half days",
		Description: "Monday through Friday, 4 hours per day",
		Weekdays: []schedule.Weekday{
			schedule.Monday, schedule.Tuesday, schedule.Wednesday,
			schedule.Thursday, schedule.Friday,
		},
		HoursPerDay: decimal.NewFromInt(4),
	},
	{
		ID:          "weekend-coverage",
		Name:        "Weekend coverage",
		Description: "Saturday and Sunday, 12 hours per day",
		Weekdays:    []schedule.Weekday{schedule.Saturday, schedule.Sunday},
		HoursPerDay: decimal.NewFromInt(12),
	},
	{
		ID:          "seven-day",
		Name:        "Seven-day coverage",
		Description: "Every day, 8 hours per day",
		Weekdays:    schedule.AllWeekdays(),
		HoursPerDay: decimal.NewFromInt(8),
	},
}

// Presets returns the built-in pattern presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}
