package schedule_test

import (
	"testing"
	"time"

	"github.com/chowken1/MLTC-Unit-Conversion-Calculator/schedule"
)

// naiveWeekdayCounts enumerates every day of the span. The closed-form
// counter must agree with this for all weekdays and span lengths.
func naiveWeekdayCounts(span schedule.DateSpan) [7]int {
	var counts [7]int
	for _, d := range span.Days() {
		counts[d.Weekday()]++
	}
	return counts
}

// =============================================================================
// FLAT COUNTING
// =============================================================================

func TestCountWeekday_ClosedFormMatchesEnumeration(t *testing.T) {
	// GIVEN: spans of every length from 1 to 420 days, from several
	//        starting weekdays
	// THEN: the closed-form count equals day-by-day enumeration for
	//       every weekday

	for startOffset := 0; startOffset < 7; startOffset++ {
		start := schedule.NewDate(2024, time.January, 1).AddDays(startOffset)
		for length := 1; length <= 420; length++ {
			span := mustSpan(t, start, start.AddDays(length-1))
			want := naiveWeekdayCounts(span)
			got := span.WeekdayCounts()
			if got != want {
				t.Fatalf("span %s: closed form %v != enumeration %v", span, got, want)
			}
		}
	}
}

func TestWeekdayCounts_SumToTotalDays(t *testing.T) {
	span := mustSpan(t, jan(3), schedule.NewDate(2024, time.March, 20))
	sum := 0
	for _, n := range span.WeekdayCounts() {
		sum += n
	}
	if sum != span.TotalDays() {
		t.Errorf("weekday counts sum %d, expected total days %d", sum, span.TotalDays())
	}
}

func TestCountWeekday_TwoFullWeeks(t *testing.T) {
	// 2024-01-01 .. 2024-01-14 is exactly two Mon-Sun weeks
	span := mustSpan(t, jan(1), jan(14))
	for _, w := range schedule.AllWeekdays() {
		if got := span.CountWeekday(w); got != 2 {
			t.Errorf("%v: expected 2 occurrences, got %d", w, got)
		}
	}
}

func TestCountWeekday_SingleDay(t *testing.T) {
	// A one-day span counts exactly its own weekday once
	span := mustSpan(t, jan(3), jan(3)) // Wednesday
	for _, w := range schedule.AllWeekdays() {
		want := 0
		if w == schedule.Wednesday {
			want = 1
		}
		if got := span.CountWeekday(w); got != want {
			t.Errorf("%v: expected %d, got %d", w, want, got)
		}
	}
}

// =============================================================================
// BUCKETED COUNTING
// =============================================================================

func TestBucketedCounts_PartitionEveryDay(t *testing.T) {
	// GIVEN: spans of assorted lengths and starting weekdays
	// THEN: every day lands in exactly one bucket, and the two bucket
	//       totals sum to the span's day count

	for startOffset := 0; startOffset < 7; startOffset++ {
		start := jan(10).AddDays(startOffset)
		for length := 1; length <= 60; length++ {
			span := mustSpan(t, start, start.AddDays(length-1))
			bc := span.BucketedWeekdayCounts()

			if bc.TotalDays() != span.TotalDays() {
				t.Fatalf("span %s: bucket totals %d != calendar days %d",
					span, bc.TotalDays(), span.TotalDays())
			}

			// Per-weekday, the bucket split sums to the flat count
			for _, w := range schedule.AllWeekdays() {
				split := bc.Count(schedule.BucketA, w) + bc.Count(schedule.BucketB, w)
				if split != span.CountWeekday(w) {
					t.Fatalf("span %s %v: bucket split %d != flat count %d",
						span, w, split, span.CountWeekday(w))
				}
			}
		}
	}
}

func TestBucketedCounts_SingleDayAlwaysBucketA(t *testing.T) {
	// The anchor is the Monday of the start's own week, so a one-day
	// span always has week parity 0.
	for offset := 0; offset < 14; offset++ {
		d := jan(1).AddDays(offset)
		span := mustSpan(t, d, d)
		bc := span.BucketedWeekdayCounts()
		if bc.BucketDays(schedule.BucketA) != 1 || bc.BucketDays(schedule.BucketB) != 0 {
			t.Errorf("single-day span at %s: expected all of it in bucket A, got A=%d B=%d",
				d, bc.BucketDays(schedule.BucketA), bc.BucketDays(schedule.BucketB))
		}
	}
}

func TestBucketedCounts_AlternationFromMidWeekStart(t *testing.T) {
	// GIVEN: a span starting Thursday Jan 4 (anchor Monday Jan 1)
	// THEN: Jan 4-7 are bucket A (week 0), Jan 8-14 bucket B (week 1),
	//       Jan 15-21 bucket A again (week 2)

	span := mustSpan(t, jan(4), jan(21))
	bc := span.BucketedWeekdayCounts()

	if got := bc.BucketDays(schedule.BucketA); got != 11 {
		t.Errorf("expected 11 days in bucket A (Thu-Sun + full week 3), got %d", got)
	}
	if got := bc.BucketDays(schedule.BucketB); got != 7 {
		t.Errorf("expected 7 days in bucket B (full week 2), got %d", got)
	}

	// Week-2 Monday (Jan 8) must be B, week-3 Monday (Jan 15) must be A
	anchor := span.AnchorMonday()
	if schedule.BucketOf(jan(8), anchor) != schedule.BucketB {
		t.Error("Jan 8 should fall in bucket B")
	}
	if schedule.BucketOf(jan(15), anchor) != schedule.BucketA {
		t.Error("Jan 15 should fall in bucket A")
	}
}

func TestBucketedCounts_ShortSpanWithinOneWeek(t *testing.T) {
	// A sub-week span that never crosses the Monday boundary sits
	// entirely in bucket A.
	span := mustSpan(t, jan(2), jan(5)) // Tue-Fri of the anchor week
	bc := span.BucketedWeekdayCounts()
	if bc.BucketDays(schedule.BucketA) != 4 || bc.BucketDays(schedule.BucketB) != 0 {
		t.Errorf("expected 4/0 split, got A=%d B=%d",
			bc.BucketDays(schedule.BucketA), bc.BucketDays(schedule.BucketB))
	}
}
