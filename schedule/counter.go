/*
counter.go - Weekday occurrence counting over a date span

PURPOSE:
  Counts how many times each weekday occurs in an inclusive span.

TWO ALGORITHMS:
  Flat count (CountWeekday / WeekdayCounts):
    Closed form - full weeks contribute one of each weekday, then the
    remainder days are walked modularly from the span's starting weekday.
    Constant time regardless of span length.

  Bucketed count (BucketedWeekdayCounts):
    Enumerates every day because bucket assignment depends on a day's
    absolute week position, not just its weekday. Each day's Mon-Sun week
    is measured from the anchor Monday (the Monday of the week containing
    the span's start); even weeks are bucket A, odd weeks are bucket B.

  The flat closed form and day-by-day enumeration must agree exactly for
  every weekday and span length; counter_test.go checks this as a property.

SEE ALSO:
  - date.go: DateSpan, AnchorMonday
  - engine.go: prices these counts against patterns
*/
package schedule

// =============================================================================
// FLAT COUNTING - Closed form
// =============================================================================

// CountWeekday returns how many times the weekday occurs in the span.
// Full weeks contribute one occurrence each; the remainder days start at
// the span's starting weekday and wrap modulo 7.
func (s DateSpan) CountWeekday(target Weekday) int {
	totalDays := s.TotalDays()
	count := totalDays / 7
	remainder := totalDays % 7
	startWd := int(s.Start.Weekday())
	for i := 0; i < remainder; i++ {
		if Weekday((startWd+i)%7) == target {
			count++
		}
	}
	return count
}

// WeekdayCounts returns the flat count for all seven weekdays, indexed by
// Weekday (Monday = 0).
func (s DateSpan) WeekdayCounts() [7]int {
	var counts [7]int
	for _, w := range AllWeekdays() {
		counts[w] = s.CountWeekday(w)
	}
	return counts
}

// =============================================================================
// BUCKETED COUNTING - Alternating weeks
// =============================================================================

// Bucket tags a day as belonging to the Week A or Week B pattern.
type Bucket int

const (
	BucketA Bucket = iota
	BucketB
)

func (b Bucket) String() string {
	if b == BucketA {
		return "A"
	}
	return "B"
}

// Buckets returns both buckets in order.
func Buckets() []Bucket { return []Bucket{BucketA, BucketB} }

// BucketOf assigns a day to a bucket by week parity relative to the anchor
// Monday. The week containing the anchor has parity 0 (bucket A).
func BucketOf(d Date, anchorMonday Date) Bucket {
	weekIndex := DaysBetween(anchorMonday, d) / 7
	if weekIndex%2 == 0 {
		return BucketA
	}
	return BucketB
}

// BucketedCounts holds per-(bucket, weekday) occurrence counts.
type BucketedCounts struct {
	counts [2][7]int
}

// Count returns the occurrences of a weekday within a bucket.
func (bc BucketedCounts) Count(b Bucket, w Weekday) int {
	return bc.counts[b][w]
}

// BucketDays returns the total number of span days assigned to a bucket.
func (bc BucketedCounts) BucketDays(b Bucket) int {
	total := 0
	for _, n := range bc.counts[b] {
		total += n
	}
	return total
}

// TotalDays returns the day count across both buckets. Always equals the
// span's inclusive day count: every day lands in exactly one bucket.
func (bc BucketedCounts) TotalDays() int {
	return bc.BucketDays(BucketA) + bc.BucketDays(BucketB)
}

// BucketedWeekdayCounts enumerates the span and partitions each day into
// its bucket. The anchor is derived from the span itself, so a one-day
// span always lands in bucket A, and a span shorter than a week may sit
// entirely in one bucket.
func (s DateSpan) BucketedWeekdayCounts() BucketedCounts {
	anchor := s.AnchorMonday()
	var bc BucketedCounts
	for _, day := range s.Days() {
		bc.counts[BucketOf(day, anchor)][day.Weekday()]++
	}
	return bc
}
