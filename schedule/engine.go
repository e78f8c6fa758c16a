/*
Package schedule computes scheduled service totals over calendar date spans.

PURPOSE:
  Given an inclusive date span and a recurring weekly attendance pattern,
  compute the total authorized hours (or 15-minute units, or per-diems)
  for the span. This is the calculation core behind PCA and CDPAS unit
  conversion: everything here is a pure function of its inputs.

KEY CONCEPTS IN THIS FILE (engine.go):
  - Mode: single pattern, alternating Week A/Week B, or prorated weekly
  - Input: one calculation's worth of validated inputs
  - CalculationResult: totals plus an ordered per-weekday breakdown

DESIGN PRINCIPLES:
  1. Immutability: results are built once and never mutated
  2. Precision: uses decimal.Decimal for all hour arithmetic
  3. Fail fast: invalid range or empty selection aborts before any math
  4. No hidden state: the alternating anchor derives from the span itself

USAGE:
  span, err := schedule.NewDateSpan(start, end)
  pattern := schedule.UniformPattern(
      schedule.NewWeekdaySelection(schedule.Monday, schedule.Tuesday),
      decimal.NewFromInt(8),
  )
  result, err := schedule.ComputeSingle(span, pattern, schedule.UnitHourly)

SEE ALSO:
  - counter.go: weekday occurrence counting (flat and bucketed)
  - pattern.go: selection-gated hours patterns
  - unit.go: hour/unit conversion
  - errors.go: the three error kinds
*/
package schedule

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MODE AND INPUT
// =============================================================================

type Mode string

const (
	ModeSingle      Mode = "single"
	ModeAlternating Mode = "alternating"
	ModeProrated    Mode = "prorated_weekly"
)

// Input carries one calculation's inputs. Which fields matter depends on
// Mode: Patterns and Unit for single/alternating, HoursPerWeek for prorated.
type Input struct {
	Mode         Mode
	Span         DateSpan
	Patterns     PatternModel
	Unit         Unit
	HoursPerWeek decimal.Decimal
}

// =============================================================================
// RESULT
// =============================================================================

// BreakdownRow is one line of the per-weekday result table. Bucket is nil
// in single-pattern mode.
type BreakdownRow struct {
	Weekday        Weekday
	Bucket         *Bucket
	Count          int
	HoursPerDay    decimal.Decimal
	ConvertedTotal decimal.Decimal
}

// CalculationResult is the full outcome of one calculation. Produced fresh
// per invocation and never mutated afterwards.
type CalculationResult struct {
	Mode              Mode
	Unit              Unit // empty in prorated mode
	TotalCalendarDays int

	// Matching days and base hours. In alternating mode the A/B fields
	// carry the per-bucket split and the plain fields carry the sums.
	MatchingDays  int
	MatchingDaysA int
	MatchingDaysB int
	BaseHours     decimal.Decimal
	BaseHoursA    decimal.Decimal
	BaseHoursB    decimal.Decimal

	FinalTotal  decimal.Decimal
	FinalTotalA decimal.Decimal
	FinalTotalB decimal.Decimal

	// Prorated mode only.
	HoursPerWeek     decimal.Decimal
	WeeksInSpan      decimal.Decimal
	QuarterHourUnits decimal.Decimal

	// Ordered: bucket A before B, Monday..Sunday within a bucket.
	// Alternating mode carries only rows with a non-zero count or
	// non-zero converted total; the suppressed cells still participate
	// in the totals above.
	Breakdown []BreakdownRow
}

// =============================================================================
// ENGINE
// =============================================================================

// Compute dispatches on Input.Mode. The mode-specific entry points below
// are the primary API; Compute exists for callers that carry the mode as
// data (HTTP handlers, stored requests).
func Compute(in Input) (*CalculationResult, error) {
	switch in.Mode {
	case ModeSingle:
		return ComputeSingle(in.Span, in.Patterns.A, in.Unit)
	case ModeAlternating:
		return ComputeAlternating(in.Span, in.Patterns.A, in.Patterns.B, in.Unit)
	case ModeProrated:
		return ComputeProratedWeekly(in.Span, in.HoursPerWeek)
	default:
		return nil, fmt.Errorf("unknown calculation mode %q", string(in.Mode))
	}
}

// ComputeSingle prices one weekly pattern across the span using the flat
// closed-form weekday counts.
func ComputeSingle(span DateSpan, pattern Pattern, unit Unit) (*CalculationResult, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}
	if err := SinglePattern(pattern).Validate(); err != nil {
		return nil, err
	}
	if !unit.Valid() {
		return nil, &UnknownUnitError{Unit: unit}
	}

	counts := span.WeekdayCounts()

	result := &CalculationResult{
		Mode:              ModeSingle,
		Unit:              unit,
		TotalCalendarDays: span.TotalDays(),
		BaseHours:         decimal.Zero,
	}

	for _, w := range pattern.SelectedWeekdays() {
		count := counts[w]
		hours := pattern.Hours(w)
		base := hours.Mul(decimal.NewFromInt(int64(count)))

		converted, err := Convert(base, count, unit)
		if err != nil {
			return nil, err
		}

		result.MatchingDays += count
		result.BaseHours = result.BaseHours.Add(base)
		result.Breakdown = append(result.Breakdown, BreakdownRow{
			Weekday:        w,
			Count:          count,
			HoursPerDay:    hours,
			ConvertedTotal: converted,
		})
	}

	final, err := Convert(result.BaseHours, result.MatchingDays, unit)
	if err != nil {
		return nil, err
	}
	result.FinalTotal = final
	return result, nil
}

// ComputeAlternating prices two alternating weekly patterns. Days are
// partitioned into Week A / Week B buckets by parity from the span's
// anchor Monday, each bucket is priced against its own pattern, and the
// bucket totals are converted independently before summing. Converting
// per bucket is what keeps per-diem correct: per-diems sum as day counts,
// not as hours.
func ComputeAlternating(span DateSpan, weekA, weekB Pattern, unit Unit) (*CalculationResult, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}
	model := AlternatingPatterns(weekA, weekB)
	if err := model.Validate(); err != nil {
		return nil, err
	}
	if !unit.Valid() {
		return nil, &UnknownUnitError{Unit: unit}
	}

	counts := span.BucketedWeekdayCounts()
	patterns := map[Bucket]Pattern{BucketA: weekA, BucketB: weekB}

	result := &CalculationResult{
		Mode:              ModeAlternating,
		Unit:              unit,
		TotalCalendarDays: span.TotalDays(),
		BaseHoursA:        decimal.Zero,
		BaseHoursB:        decimal.Zero,
	}

	for _, b := range Buckets() {
		pattern := patterns[b]
		bucketDays := 0
		bucketHours := decimal.Zero

		for _, w := range AllWeekdays() {
			// The full (bucket, weekday) grid is computed; rows
			// that are all zero are left out of the breakdown.
			count := 0
			if pattern.Selected(w) {
				count = counts.Count(b, w)
			}
			hours := pattern.Hours(w)
			base := hours.Mul(decimal.NewFromInt(int64(count)))

			converted, err := Convert(base, count, unit)
			if err != nil {
				return nil, err
			}

			bucketDays += count
			bucketHours = bucketHours.Add(base)

			if count > 0 || converted.IsPositive() {
				bucket := b
				result.Breakdown = append(result.Breakdown, BreakdownRow{
					Weekday:        w,
					Bucket:         &bucket,
					Count:          count,
					HoursPerDay:    hours,
					ConvertedTotal: converted,
				})
			}
		}

		final, err := Convert(bucketHours, bucketDays, unit)
		if err != nil {
			return nil, err
		}

		switch b {
		case BucketA:
			result.MatchingDaysA = bucketDays
			result.BaseHoursA = bucketHours
			result.FinalTotalA = final
		case BucketB:
			result.MatchingDaysB = bucketDays
			result.BaseHoursB = bucketHours
			result.FinalTotalB = final
		}
	}

	result.MatchingDays = result.MatchingDaysA + result.MatchingDaysB
	result.BaseHours = result.BaseHoursA.Add(result.BaseHoursB)
	result.FinalTotal = result.FinalTotalA.Add(result.FinalTotalB)
	return result, nil
}

var seven = decimal.NewFromInt(7)

// ComputeProratedWeekly prorates a weekly hours figure by the real-valued
// number of weeks in the span (calendar days / 7, not rounded). Weekday
// selection, per-day hours, and unit choice do not apply; the result
// always reports both total hours and 15-minute units.
func ComputeProratedWeekly(span DateSpan, hoursPerWeek decimal.Decimal) (*CalculationResult, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}
	totalDays := span.TotalDays()
	weeks := decimal.NewFromInt(int64(totalDays)).Div(seven)
	totalHours := hoursPerWeek.Mul(weeks)

	return &CalculationResult{
		Mode:              ModeProrated,
		TotalCalendarDays: totalDays,
		HoursPerWeek:      hoursPerWeek,
		WeeksInSpan:       weeks,
		BaseHours:         totalHours,
		FinalTotal:        totalHours,
		QuarterHourUnits:  totalHours.Mul(four),
	}, nil
}
