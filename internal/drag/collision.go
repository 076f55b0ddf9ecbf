package drag

import "sort"

// Origin classifies the item a drag gesture started from.
type Origin string

const (
	OriginInbox       Origin = "inbox-task"
	OriginCalendar    Origin = "calendar-task"
	OriginNight       Origin = "night-task"
	OriginResizeStart Origin = "resize-start"
	OriginResizeEnd   Origin = "resize-end"
)

// IsResize returns true for the two resize-handle origins.
func (o Origin) IsResize() bool {
	return o == OriginResizeStart || o == OriginResizeEnd
}

// Resolve returns the ordered list of targets the drag is currently over.
//
// Pointer containment wins, most-recently-registered first. Two
// type-specific preferences refine the containment set: a calendar task
// over a reorder zone snaps to the zone exclusively, even when the pointer
// is also inside the task card underneath; a resize handle only cares
// about day-level targets and ignores finer-grained ones. When nothing
// contains the pointer, the nearest candidate center wins, with the same
// restrictions tried first.
//
// Pure function of (origin, pointer, candidates); returns nil when there
// are no candidates.
func Resolve(origin Origin, pointer Point, candidates []Target) []Target {
	contained := containedTargets(pointer, candidates)
	if len(contained) > 0 {
		if origin == OriginCalendar {
			if zones := filterKind(contained, TargetReorderZone); len(zones) > 0 {
				return zones
			}
		}
		if origin.IsResize() {
			if days := filterDayLike(contained); len(days) > 0 {
				return days
			}
		}
		return contained
	}

	// Nothing contains the pointer: fall back to nearest center, keeping
	// the same per-origin restrictions ahead of the unrestricted pass.
	if origin == OriginCalendar {
		if zones := filterKind(candidates, TargetReorderZone); len(zones) > 0 {
			return sortByCenterDistance(zones, pointer)
		}
	}
	if origin.IsResize() {
		if days := filterDayLike(candidates); len(days) > 0 {
			return sortByCenterDistance(days, pointer)
		}
	}
	return sortByCenterDistance(candidates, pointer)
}

// containedTargets returns the candidates whose rectangle contains the
// pointer, most recently registered first.
func containedTargets(pointer Point, candidates []Target) []Target {
	var result []Target
	for i := len(candidates) - 1; i >= 0; i-- {
		if candidates[i].Rect.Contains(pointer) {
			result = append(result, candidates[i])
		}
	}
	return result
}

func filterKind(targets []Target, kind TargetKind) []Target {
	var result []Target
	for _, t := range targets {
		if t.Kind == kind {
			result = append(result, t)
		}
	}
	return result
}

func filterDayLike(targets []Target) []Target {
	var result []Target
	for _, t := range targets {
		if isDayLike(t) {
			result = append(result, t)
		}
	}
	return result
}

func sortByCenterDistance(targets []Target, pointer Point) []Target {
	if len(targets) == 0 {
		return nil
	}
	sorted := make([]Target, len(targets))
	copy(sorted, targets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pointer.DistanceTo(sorted[i].Rect.Center()) < pointer.DistanceTo(sorted[j].Rect.Center())
	})
	return sorted
}
