package schedule

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CONVERSION UNIT - How base hours become a billable total
// =============================================================================

type Unit string

const (
	UnitHourly      Unit = "hourly"       // hours pass through unchanged
	UnitQuarterHour Unit = "quarter_hour" // hours x 4 (15-minute billing units)
	UnitPerDiem     Unit = "per_diem"     // matching day count; hours ignored
)

func (u Unit) Valid() bool {
	switch u {
	case UnitHourly, UnitQuarterHour, UnitPerDiem:
		return true
	}
	return false
}

var four = decimal.NewFromInt(4)

// Convert maps base hours plus a matching-day count into the requested unit.
//
// Hourly and QuarterHour are linear in hours, so converting bucket totals
// separately and summing matches converting the combined hours. PerDiem is
// linear in day count only: alternating-mode callers must convert each
// bucket and sum the day counts, never derive per-diems from summed hours.
func Convert(baseHours decimal.Decimal, matchingDays int, unit Unit) (decimal.Decimal, error) {
	switch unit {
	case UnitHourly:
		return baseHours, nil
	case UnitQuarterHour:
		return baseHours.Mul(four), nil
	case UnitPerDiem:
		return decimal.NewFromInt(int64(matchingDays)), nil
	default:
		return decimal.Zero, &UnknownUnitError{Unit: unit}
	}
}
