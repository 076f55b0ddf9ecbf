// Package reorder manages the side-by-side layout of tasks whose time
// ranges overlap on the same day: overlap grouping, display-order math for
// drops on reorder zones, and proportional column widths.
package reorder

import (
	"sort"

	"github.com/javiermolinar/tablero/internal/task"
)

// OrderSpacing is the gap between consecutive display orders. The spacing
// leaves room for manual fine-grained reordering without renumbering the
// whole group.
const OrderSpacing = 10

// GroupOverlapping splits a day's timed tasks into clusters of mutually
// overlapping time ranges. Tasks are considered in order of start hour,
// then display order; each task joins the first existing group whose
// current span overlaps its own, else starts a new group. Groups come
// back internally sorted by display order.
func GroupOverlapping(tasks []*task.Task) [][]*task.Task {
	var timed []*task.Task
	for _, t := range tasks {
		if t != nil && t.IsTimed() {
			timed = append(timed, t)
		}
	}
	if len(timed) == 0 {
		return nil
	}

	sort.SliceStable(timed, func(i, j int) bool {
		si, _ := task.ParseTimeToHours(timed[i].StartTime)
		sj, _ := task.ParseTimeToHours(timed[j].StartTime)
		if si != sj {
			return si < sj
		}
		return timed[i].DisplayOrder < timed[j].DisplayOrder
	})

	type span struct {
		start, end float64
		tasks      []*task.Task
	}
	var groups []*span

	for _, t := range timed {
		start, _ := task.ParseTimeToHours(t.StartTime)
		end := start + t.Duration()

		placed := false
		for _, g := range groups {
			if start < g.end && g.start < end {
				g.tasks = append(g.tasks, t)
				if start < g.start {
					g.start = start
				}
				if end > g.end {
					g.end = end
				}
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, &span{start: start, end: end, tasks: []*task.Task{t}})
		}
	}

	result := make([][]*task.Task, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g.tasks, func(i, j int) bool {
			return g.tasks[i].DisplayOrder < g.tasks[j].DisplayOrder
		})
		result = append(result, g.tasks)
	}
	return result
}

// Change is one task's new display order.
type Change struct {
	TaskID       string
	DisplayOrder int
}

// PlanReorder computes the display-order changes that move the given task
// to the requested column within its group. The target index shifts down
// by one when it lies past the task's current column, to account for
// removal-then-insertion semantics. Orders are assigned as
// index * OrderSpacing across the whole group; tasks whose stored order
// already matches their slot are skipped, so a normalized group yields
// updates only for the positions that moved.
//
// There is no compaction strategy for long-lived groups; the spacing is
// assumed to outlast any realistic number of re-insertions.
func PlanReorder(group []*task.Task, movedID string, targetColumn int) []Change {
	current := -1
	for i, t := range group {
		if t != nil && t.ID == movedID {
			current = i
			break
		}
	}
	if current < 0 || len(group) < 2 {
		return nil
	}

	next := targetColumn
	if next > current {
		next--
	}
	if next < 0 {
		next = 0
	}
	if next > len(group)-1 {
		next = len(group) - 1
	}
	if next == current {
		return nil
	}

	removed := make([]*task.Task, 0, len(group)-1)
	removed = append(removed, group[:current]...)
	removed = append(removed, group[current+1:]...)

	reordered := make([]*task.Task, 0, len(group))
	reordered = append(reordered, removed[:next]...)
	reordered = append(reordered, group[current])
	reordered = append(reordered, removed[next:]...)

	var changes []Change
	for i, t := range reordered {
		if t.DisplayOrder == i*OrderSpacing {
			continue
		}
		changes = append(changes, Change{TaskID: t.ID, DisplayOrder: i * OrderSpacing})
	}
	return changes
}
