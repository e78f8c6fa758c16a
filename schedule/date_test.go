package schedule_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func mustSpan(t *testing.T, start, end schedule.Date) schedule.DateSpan {
	t.Helper()
	span, err := schedule.NewDateSpan(start, end)
	if err != nil {
		t.Fatalf("unexpected error building span: %v", err)
	}
	return span
}

func jan(day int) schedule.Date {
	return schedule.NewDate(2024, time.January, day)
}

// =============================================================================
// WEEKDAY TESTS
// =============================================================================

func TestWeekdayOf_ISOOrdering(t *testing.T) {
	// 2024-01-01 is a Monday; the ISO numbering puts Monday at 0.
	for i, want := range schedule.AllWeekdays() {
		d := jan(1 + i)
		if got := d.Weekday(); got != want {
			t.Errorf("day %s: expected weekday %v, got %v", d, want, got)
		}
	}

	// 2024-01-07 is a Sunday, the last ISO weekday
	if got := jan(7).Weekday(); got != schedule.Sunday {
		t.Errorf("expected Sunday, got %v", got)
	}
}

func TestWeekday_Labels(t *testing.T) {
	if schedule.Monday.String() != "Mon" || schedule.Sunday.String() != "Sun" {
		t.Errorf("unexpected weekday labels: %v %v", schedule.Monday, schedule.Sunday)
	}
}

func TestMondayOfWeek(t *testing.T) {
	// GIVEN: dates across a Mon-Sun week (Jan 1 2024 is a Monday)
	// THEN: all of them anchor to that same Monday
	monday := jan(1)
	for day := 1; day <= 7; day++ {
		if got := jan(day).MondayOfWeek(); !got.Equal(monday) {
			t.Errorf("day %d: expected anchor %s, got %s", day, monday, got)
		}
	}

	// Jan 8 starts the next week
	if got := jan(8).MondayOfWeek(); !got.Equal(jan(8)) {
		t.Errorf("expected Jan 8 to be its own Monday, got %s", got)
	}
}

// =============================================================================
// DATE SPAN TESTS
// =============================================================================

func TestNewDateSpan_StartAfterEnd_Rejected(t *testing.T) {
	// GIVEN: start after end
	// WHEN: constructing the span
	// THEN: ErrInvalidRange with the offending bounds

	_, err := schedule.NewDateSpan(jan(10), jan(5))
	if err == nil {
		t.Fatal("expected error for start after end")
	}
	if !errors.Is(err, schedule.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}

	var rangeErr *schedule.InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected InvalidRangeError, got %T", err)
	}
	if !rangeErr.Start.Equal(jan(10)) || !rangeErr.End.Equal(jan(5)) {
		t.Errorf("error carries wrong bounds: %v", rangeErr)
	}

	if !schedule.IsClientError(err) {
		t.Error("invalid range should be a client error")
	}
}

func TestDateSpan_TotalDays_Inclusive(t *testing.T) {
	cases := []struct {
		start, end schedule.Date
		want       int
	}{
		{jan(1), jan(1), 1},
		{jan(1), jan(2), 2},
		{jan(1), jan(14), 14},
		{schedule.NewDate(2024, time.February, 27), schedule.NewDate(2024, time.March, 1), 4}, // leap year
		{schedule.NewDate(2023, time.December, 30), jan(2), 4},                                // year boundary
	}
	for _, c := range cases {
		span := mustSpan(t, c.start, c.end)
		if got := span.TotalDays(); got != c.want {
			t.Errorf("span %s: expected %d days, got %d", span, c.want, got)
		}
	}
}

func TestDateSpan_Days_MatchesTotalAndRestarts(t *testing.T) {
	span := mustSpan(t, jan(1), jan(10))

	days := span.Days()
	if len(days) != span.TotalDays() {
		t.Fatalf("expected %d days, got %d", span.TotalDays(), len(days))
	}
	if !days[0].Equal(span.Start) || !days[len(days)-1].Equal(span.End) {
		t.Error("enumeration should cover both bounds inclusively")
	}
	for i := 1; i < len(days); i++ {
		if schedule.DaysBetween(days[i-1], days[i]) != 1 {
			t.Fatalf("days not consecutive at index %d", i)
		}
	}

	// Derived purely from the bounds: a second pass yields the same sequence
	again := span.Days()
	for i := range days {
		if !again[i].Equal(days[i]) {
			t.Fatal("re-enumeration diverged")
		}
	}
}

func TestDateSpan_AnchorMonday_FollowsStart(t *testing.T) {
	// A span starting mid-week anchors to that week's Monday
	span := mustSpan(t, jan(4), jan(20)) // Jan 4 2024 is a Thursday
	if got := span.AnchorMonday(); !got.Equal(jan(1)) {
		t.Errorf("expected anchor 2024-01-01, got %s", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := schedule.ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(schedule.NewDate(2024, time.March, 15)) {
		t.Errorf("parsed wrong date: %s", d)
	}

	if _, err := schedule.ParseDate("15/03/2024"); err == nil {
		t.Error("expected error for non-ISO format")
	}
}
