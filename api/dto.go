/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the schedule engine's decimal-based types from the wire format: hours
  cross the wire as float64 and are converted at this edge.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - program: wire-level vocabulary (program/unit/weekday identifiers)
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/program"
	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/schedule"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// PatternRequest describes one weekly pattern. Hours are given either
// per weekday or as a single uniform hours_per_day applied to every
// selected weekday (the uniform shorthand wins if both are present).
type PatternRequest struct {
	Weekdays    []string           `json:"weekdays"`
	Hours       map[string]float64 `json:"hours,omitempty"`
	HoursPerDay *float64           `json:"hours_per_day,omitempty"`
}

// CalculateRequest is the request to run a calculation.
//
//	pca:      pattern + unit
//	pca_alt:  week_a + week_b + unit
//	cdpas:    hours_per_week (no unit)
type CalculateRequest struct {
	Program      string          `json:"program"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Unit         string          `json:"unit,omitempty"`
	Pattern      *PatternRequest `json:"pattern,omitempty"`
	WeekA        *PatternRequest `json:"week_a,omitempty"`
	WeekB        *PatternRequest `json:"week_b,omitempty"`
	HoursPerWeek *float64        `json:"hours_per_week,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// BreakdownRowDTO is one line of the per-weekday breakdown table.
type BreakdownRowDTO struct {
	Pattern        string  `json:"pattern,omitempty"` // "Week A" / "Week B", alternating only
	Weekday        string  `json:"weekday"`
	Count          int     `json:"count"`
	HoursPerDay    float64 `json:"hours_per_day"`
	ConvertedTotal float64 `json:"converted_total"`
}

// CalculationDTO is a computed result. Per-bucket and prorated fields are
// pointers so modes that don't produce them omit them entirely.
type CalculationDTO struct {
	ID          string `json:"id,omitempty"`
	Program     string `json:"program"`
	ProgramName string `json:"program_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Unit        string `json:"unit,omitempty"`
	UnitLabel   string `json:"unit_label,omitempty"`

	TotalCalendarDays int     `json:"total_calendar_days"`
	MatchingDays      int     `json:"matching_days"`
	BaseHours         float64 `json:"base_hours"`
	FinalTotal        float64 `json:"final_total"`

	// Alternating mode
	DaysWeekA       *int     `json:"days_week_a,omitempty"`
	DaysWeekB       *int     `json:"days_week_b,omitempty"`
	FinalTotalWeekA *float64 `json:"final_total_week_a,omitempty"`
	FinalTotalWeekB *float64 `json:"final_total_week_b,omitempty"`

	// Prorated (CDPAS) mode
	HoursPerWeek     *float64 `json:"hours_per_week,omitempty"`
	WeeksInSpan      *float64 `json:"weeks_in_span,omitempty"`
	QuarterHourUnits *float64 `json:"quarter_hour_units,omitempty"`

	Breakdown []BreakdownRowDTO `json:"breakdown,omitempty"`
	CreatedAt string            `json:"created_at,omitempty"`
}

// HistoryItemDTO is a stored calculation summary for list views.
type HistoryItemDTO struct {
	ID         string  `json:"id"`
	Program    string  `json:"program"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Unit       string  `json:"unit,omitempty"`
	FinalTotal float64 `json:"final_total"`
	CreatedAt  string  `json:"created_at"`
}

// PresetDTO is a pattern preset for client pickers.
type PresetDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Weekdays    []string `json:"weekdays"`
	HoursPerDay float64  `json:"hours_per_day"`
}

// UnitDTO pairs a unit identifier with its display label.
type UnitDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// RESULT MAPPING
// =============================================================================

func round2(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

// toCalculationDTO flattens an engine result into the wire shape.
func toCalculationDTO(prog program.Program, span schedule.DateSpan, result *schedule.CalculationResult) CalculationDTO {
	dto := CalculationDTO{
		Program:           string(prog),
		ProgramName:       prog.DisplayName(),
		StartDate:         span.Start.String(),
		EndDate:           span.End.String(),
		TotalCalendarDays: result.TotalCalendarDays,
		MatchingDays:      result.MatchingDays,
		BaseHours:         round2(result.BaseHours),
		FinalTotal:        round2(result.FinalTotal),
	}

	if result.Mode != schedule.ModeProrated {
		dto.Unit = string(result.Unit)
		dto.UnitLabel = program.UnitLabel(result.Unit)
	}

	switch result.Mode {
	case schedule.ModeAlternating:
		daysA, daysB := result.MatchingDaysA, result.MatchingDaysB
		finalA, finalB := round2(result.FinalTotalA), round2(result.FinalTotalB)
		dto.DaysWeekA, dto.DaysWeekB = &daysA, &daysB
		dto.FinalTotalWeekA, dto.FinalTotalWeekB = &finalA, &finalB

	case schedule.ModeProrated:
		hoursPerWeek := result.HoursPerWeek.InexactFloat64()
		weeks := result.WeeksInSpan.Round(4).InexactFloat64()
		units := round2(result.QuarterHourUnits)
		dto.HoursPerWeek = &hoursPerWeek
		dto.WeeksInSpan = &weeks
		dto.QuarterHourUnits = &units
	}

	for _, row := range result.Breakdown {
		rowDTO := BreakdownRowDTO{
			Weekday:        row.Weekday.String(),
			Count:          row.Count,
			HoursPerDay:    row.HoursPerDay.InexactFloat64(),
			ConvertedTotal: round2(row.ConvertedTotal),
		}
		if row.Bucket != nil {
			rowDTO.Pattern = "Week " + row.Bucket.String()
		}
		dto.Breakdown = append(dto.Breakdown, rowDTO)
	}

	return dto
}
