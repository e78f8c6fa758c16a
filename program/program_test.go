package program_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/program"
	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/schedule"
)

func TestParseProgram(t *testing.T) {
	p, err := program.ParseProgram("pca")
	require.NoError(t, err)
	assert.Equal(t, program.PCA, p)
	assert.Equal(t, schedule.ModeSingle, p.Mode())

	p, err = program.ParseProgram(" PCA_ALT ")
	require.NoError(t, err)
	assert.Equal(t, program.PCAAlternating, p)
	assert.Equal(t, schedule.ModeAlternating, p.Mode())

	p, err = program.ParseProgram("cdpas")
	require.NoError(t, err)
	assert.Equal(t, program.CDPAS, p)
	assert.Equal(t, schedule.ModeProrated, p.Mode())

	_, err = program.ParseProgram("hha")
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	for _, name := range []string{"mon", "Monday", " MON "} {
		w, err := program.ParseWeekday(name)
		require.NoError(t, err, name)
		assert.Equal(t, schedule.Monday, w, name)
	}

	w, err := program.ParseWeekday("sun")
	require.NoError(t, err)
	assert.Equal(t, schedule.Sunday, w)

	_, err = program.ParseWeekday("funday")
	assert.Error(t, err)
}

func TestParseUnit_AcceptsLegacySpellings(t *testing.T) {
	cases := map[string]schedule.Unit{
		"hourly":       schedule.UnitHourly,
		"quarter_hour": schedule.UnitQuarterHour,
		"15 mins":      schedule.UnitQuarterHour,
		"Per diem":     schedule.UnitPerDiem,
		"per_diem":     schedule.UnitPerDiem,
	}
	for input, want := range cases {
		u, err := program.ParseUnit(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, u, input)
	}

	_, err := program.ParseUnit("weekly")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, schedule.ErrUnknownUnit))
}

func TestUnitLabels(t *testing.T) {
	assert.Equal(t, "Total hours", program.UnitLabel(schedule.UnitHourly))
	assert.Equal(t, "Total 15-min units", program.UnitLabel(schedule.UnitQuarterHour))
	assert.Equal(t, "Total per-diems (days)", program.UnitLabel(schedule.UnitPerDiem))
	assert.Len(t, program.Units(), 3)
}

func TestStandardWorkweek(t *testing.T) {
	pattern := program.StandardWorkweek()

	assert.Equal(t, []schedule.Weekday{
		schedule.Monday, schedule.Tuesday, schedule.Wednesday,
		schedule.Thursday, schedule.Friday,
	}, pattern.SelectedWeekdays())
	assert.True(t, pattern.Hours(schedule.Wednesday).Equal(decimal.NewFromInt(8)))
	assert.True(t, pattern.Hours(schedule.Saturday).IsZero())
}

func TestPresets_AllMaterialize(t *testing.T) {
	presets := program.Presets()
	require.NotEmpty(t, presets)

	for _, p := range presets {
		pattern := p.Pattern()
		assert.False(t, pattern.IsEmpty(), p.ID)
		for _, w := range p.Weekdays {
			assert.True(t, pattern.Hours(w).Equal(p.HoursPerDay), "%s %v", p.ID, w)
		}
	}
}
