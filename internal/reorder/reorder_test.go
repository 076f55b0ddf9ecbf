package reorder

import (
	"testing"

	"github.com/javiermolinar/tablero/internal/task"
)

func timed(id, start, end string, order int) *task.Task {
	return &task.Task{ID: id, Title: id, StartTime: start, EndTime: end, DisplayOrder: order}
}

func ids(group []*task.Task) []string {
	out := make([]string, len(group))
	for i, t := range group {
		out[i] = t.ID
	}
	return out
}

func TestGroupOverlapping(t *testing.T) {
	a := timed("a", "09:00:00", "10:30:00", 0)
	b := timed("b", "10:00:00", "11:00:00", 10)
	c := timed("c", "14:00:00", "15:00:00", 0)
	d := timed("d", "14:30:00", "16:00:00", 10)
	solo := timed("solo", "18:00:00", "19:00:00", 0)
	untimed := &task.Task{ID: "untimed", Title: "untimed"}

	groups := GroupOverlapping([]*task.Task{d, untimed, a, solo, c, b})
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	want := [][]string{{"a", "b"}, {"c", "d"}, {"solo"}}
	for i, g := range groups {
		got := ids(g)
		if len(got) != len(want[i]) {
			t.Fatalf("group %d = %v, want %v", i, got, want[i])
		}
		for j := range got {
			if got[j] != want[i][j] {
				t.Errorf("group %d = %v, want %v", i, got, want[i])
				break
			}
		}
	}
}

func TestGroupOverlappingChain(t *testing.T) {
	// b bridges a and c: a-c don't touch directly but share a group
	// through the extended span.
	a := timed("a", "09:00:00", "10:00:00", 0)
	b := timed("b", "09:30:00", "11:30:00", 10)
	c := timed("c", "11:00:00", "12:00:00", 20)

	groups := GroupOverlapping([]*task.Task{a, b, c})
	if len(groups) != 1 || len(groups[0]) != 3 {
		t.Fatalf("got %v, want one group of three", groups)
	}
}

func TestGroupOverlappingEmpty(t *testing.T) {
	if got := GroupOverlapping(nil); got != nil {
		t.Errorf("GroupOverlapping(nil) = %v, want nil", got)
	}
	if got := GroupOverlapping([]*task.Task{{ID: "untimed"}}); got != nil {
		t.Errorf("untimed-only input = %v, want nil", got)
	}
}

func TestPlanReorder(t *testing.T) {
	group := func() []*task.Task {
		return []*task.Task{
			timed("a", "09:00:00", "10:00:00", 0),
			timed("b", "09:00:00", "10:00:00", 10),
			timed("c", "09:00:00", "10:00:00", 20),
		}
	}

	tests := []struct {
		name   string
		moved  string
		target int
		want   map[string]int
	}{
		{
			name:   "move first to last",
			moved:  "a",
			target: 3,
			want:   map[string]int{"b": 0, "c": 10, "a": 20},
		},
		{
			name:   "move last to first",
			moved:  "c",
			target: 0,
			want:   map[string]int{"c": 0, "a": 10, "b": 20},
		},
		{
			name:   "move middle one right",
			moved:  "b",
			target: 3,
			want:   map[string]int{"c": 10, "b": 20},
		},
		{
			name:   "target past the end clamps",
			moved:  "a",
			target: 99,
			want:   map[string]int{"b": 0, "c": 10, "a": 20},
		},
		{
			name:   "negative target clamps to first",
			moved:  "b",
			target: -5,
			want:   map[string]int{"b": 0, "a": 10},
		},
		{
			name:   "same column is a no-op",
			moved:  "b",
			target: 1,
			want:   nil,
		},
		{
			name:   "unknown task is a no-op",
			moved:  "zz",
			target: 0,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := PlanReorder(group(), tt.moved, tt.target)
			if tt.want == nil {
				if changes != nil {
					t.Fatalf("got %v, want no changes", changes)
				}
				return
			}
			if len(changes) != len(tt.want) {
				t.Fatalf("got %v, want %v", changes, tt.want)
			}
			for _, c := range changes {
				want, ok := tt.want[c.TaskID]
				if !ok || c.DisplayOrder != want {
					t.Errorf("change %v, want order %d", c, tt.want[c.TaskID])
				}
			}
		})
	}
}

func TestPlanReorderRenumbersStaleOrders(t *testing.T) {
	// Orders far from their slot values: every kept task must be pulled
	// back onto the spacing grid, or its stale order would sort it ahead
	// of the renumbered ones.
	group := []*task.Task{
		timed("a", "09:00:00", "10:00:00", 50),
		timed("b", "09:00:00", "10:00:00", 60),
		timed("c", "09:00:00", "10:00:00", 70),
	}

	changes := PlanReorder(group, "c", 1)
	want := map[string]int{"a": 0, "c": 10, "b": 20}
	if len(changes) != len(want) {
		t.Fatalf("got %v, want %v", changes, want)
	}
	for _, c := range changes {
		if c.DisplayOrder != want[c.TaskID] {
			t.Errorf("task %q order = %d, want %d", c.TaskID, c.DisplayOrder, want[c.TaskID])
		}
	}
}

func TestPlanReorderSingleTaskGroup(t *testing.T) {
	group := []*task.Task{timed("a", "09:00:00", "10:00:00", 0)}
	if got := PlanReorder(group, "a", 0); got != nil {
		t.Errorf("single-task group = %v, want nil", got)
	}
}

func TestPlanReorderSpacing(t *testing.T) {
	group := []*task.Task{
		timed("a", "09:00:00", "10:00:00", 0),
		timed("b", "09:00:00", "10:00:00", 10),
	}
	changes := PlanReorder(group, "a", 2)
	for _, c := range changes {
		if c.DisplayOrder%OrderSpacing != 0 {
			t.Errorf("order %d is not a multiple of the spacing", c.DisplayOrder)
		}
	}
}
