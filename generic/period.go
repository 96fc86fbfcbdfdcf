package generic

// =============================================================================
// PERIOD - A closed span of calendar dates
// =============================================================================

// Period is a span of dates from Start to End.
//
// Periods are used two ways:
//   - as a window, both ends inclusive (e.g. a grace window Apr 1 - Dec 31)
//   - as an accrual interval, where the length is End - Start in days
//
// A Period whose End is not after Start has no length and accrues nothing.
type Period struct {
	Start Date
	End   Date
}

// NewPeriod builds a period. The caller guarantees start <= end.
func NewPeriod(start, end Date) Period {
	return Period{Start: start, End: end}
}

// Contains returns true if the date is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns the calendar days from Start to End (End - Start).
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End)
}

// IsEmpty reports whether the period has no length.
func (p Period) IsEmpty() bool {
	return !p.End.After(p.Start)
}

// Overlaps reports whether two periods share more than a boundary day.
func (p Period) Overlaps(other Period) bool {
	return p.Start.Before(other.End) && other.Start.Before(p.End)
}

// Clamp restricts the period to [from, to]. The result may be empty.
func (p Period) Clamp(from, to Date) Period {
	return Period{Start: MaxDate(p.Start, from), End: MinDate(p.End, to)}
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
