package precatorio

import (
	"sort"

	"github.com/warp/precatorio-engine/generic"
)

// =============================================================================
// TIMELINE - Split [base, final] around the grace window
// =============================================================================

// Timeline is the partition of [base, final] relative to a grace window.
type Timeline struct {
	FullRate  []generic.Period // before and/or after the grace window
	GraceRate []generic.Period // inside the grace window, at most one
}

// Partition splits [base, final] into full-rate and grace-rate intervals.
// The caller guarantees base <= final.
//
// Three candidate slices are clamped against the window and kept only when
// they have length:
//
//	before: [base, min(grace.Start, final)]             if base < grace.Start
//	grace:  [max(base, grace.Start), min(final, grace.End)]
//	after:  [max(base, grace.End), final]               if final > grace.End
//
// The clamping handles a window entirely before base, entirely after final,
// or partially overlapping. The intervals are disjoint and their union is
// exactly [base, final].
func Partition(base, final generic.Date, grace generic.Period) Timeline {
	var tl Timeline

	if base.Before(grace.Start) {
		before := generic.NewPeriod(base, generic.MinDate(grace.Start, final))
		if !before.IsEmpty() {
			tl.FullRate = append(tl.FullRate, before)
		}
	}

	during := generic.NewPeriod(base, final).Clamp(grace.Start, grace.End)
	if !during.IsEmpty() {
		tl.GraceRate = append(tl.GraceRate, during)
	}

	if final.After(grace.End) {
		after := generic.NewPeriod(generic.MaxDate(base, grace.End), final)
		if !after.IsEmpty() {
			tl.FullRate = append(tl.FullRate, after)
		}
	}

	return tl
}

// Intervals returns every interval in chronological order.
func (tl Timeline) Intervals() []generic.Period {
	all := make([]generic.Period, 0, len(tl.FullRate)+len(tl.GraceRate))
	all = append(all, tl.FullRate...)
	all = append(all, tl.GraceRate...)
	sort.Slice(all, func(i, j int) bool { return all[i].Start.Before(all[j].Start) })
	return all
}
