package tui

import (
	"testing"
	"time"

	"github.com/javiermolinar/tablero/internal/drag"
	"github.com/javiermolinar/tablero/internal/task"
)

// monday is the week under test: 2025-06-09 through 2025-06-15.
var monday = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

func day(offset int) *time.Time {
	d := monday.AddDate(0, 0, offset)
	return &d
}

func timedTask(id string, dayOffset int, start, end string) *task.Task {
	return &task.Task{
		ID:        id,
		Title:     id,
		DueDate:   day(dayOffset),
		StartTime: start,
		EndTime:   end,
	}
}

// testLayout builds a 98x40 board: inbox 22 + gutter 6 leaves 70 columns,
// so each day cell is 10 wide. Focus hours 8 to 22.
func testLayout(tasks []*task.Task) *layout {
	return buildLayout(98, 40, monday, tasks, 8, 22, "08:00", "22:00")
}

func findTarget(l *layout, kind drag.TargetKind, id string) (drag.Target, bool) {
	for _, t := range l.targets {
		if t.Kind == kind && (id == "" || t.ID == id) {
			return t, true
		}
	}
	return drag.Target{}, false
}

func TestBucketTasks(t *testing.T) {
	multi := timedTask("conf", 2, "", "")
	multi.EndDate = day(4)

	tasks := []*task.Task{
		{ID: "inbox1", Title: "inbox1"},
		{ID: "parked", Title: "parked", Location: task.LocationMemory},
		timedTask("tue", 1, "09:00:00", "10:00:00"),
		timedTask("late", 1, "23:00:00", "23:45:00"),
		timedTask("early", 3, "02:00:00", "03:00:00"),
		timedTask("nextweek", 11, "09:00:00", "10:00:00"),
		multi,
		nil,
	}
	l := testLayout(tasks)

	if len(l.inboxTasks) != 1 || l.inboxTasks[0].ID != "inbox1" {
		t.Errorf("inboxTasks: got %d", len(l.inboxTasks))
	}
	if len(l.memoryTasks) != 1 || l.memoryTasks[0].ID != "parked" {
		t.Errorf("memoryTasks: got %d", len(l.memoryTasks))
	}
	if len(l.dayTasks[1]) != 1 || l.dayTasks[1][0].ID != "tue" {
		t.Errorf("dayTasks[1]: got %d", len(l.dayTasks[1]))
	}
	if len(l.nightAfter) != 1 || l.nightAfter[0].ID != "late" {
		t.Errorf("nightAfter: got %d", len(l.nightAfter))
	}
	if len(l.nightBefore) != 1 || l.nightBefore[0].ID != "early" {
		t.Errorf("nightBefore: got %d", len(l.nightBefore))
	}
	if len(l.multiDay) != 1 || l.multiDay[0].ID != "conf" {
		t.Errorf("multiDay: got %d", len(l.multiDay))
	}
	for dayIdx := 0; dayIdx < 7; dayIdx++ {
		for _, tk := range l.dayTasks[dayIdx] {
			if tk.ID == "nextweek" {
				t.Error("task outside the week should not be bucketed")
			}
		}
	}
}

func TestGridGeometry(t *testing.T) {
	l := testLayout(nil)

	if l.dayWidth != 10 {
		t.Fatalf("dayWidth: got %d, want 10", l.dayWidth)
	}
	if l.gridX != 28 {
		t.Fatalf("gridX: got %d, want 28", l.gridX)
	}

	dayT, ok := findTarget(l, drag.TargetDay, "day:2025-06-09")
	if !ok {
		t.Fatal("missing monday day target")
	}
	if dayT.Rect.X != 28 || dayT.Rect.Y != headerRow || dayT.Rect.Height != 2 {
		t.Errorf("monday day rect: got %+v", dayT.Rect)
	}

	var slots int
	for _, tt := range l.targets {
		if tt.Kind == drag.TargetTimeSlot {
			slots++
		}
	}
	if want := 7 * 14; slots != want {
		t.Errorf("slot targets: got %d, want %d", slots, want)
	}

	// Tuesday 09:00: one column over, one hour past the first row.
	p := drag.Point{X: 39, Y: firstHourRow + 1}
	hits := drag.Resolve(drag.OriginInbox, p, l.targets)
	if len(hits) == 0 {
		t.Fatal("no target under tuesday 09:00")
	}
	if hits[0].Kind != drag.TargetTimeSlot || hits[0].Hour != 9 {
		t.Errorf("top target: got %s hour %d", hits[0].Kind, hits[0].Hour)
	}
	if !hits[0].Date.Equal(*day(1)) {
		t.Errorf("slot date: got %v", hits[0].Date)
	}
}

func TestNarrowTerminalClampsDayWidth(t *testing.T) {
	l := buildLayout(40, 20, monday, nil, 8, 22, "08:00", "22:00")
	if l.dayWidth != minDayWidth {
		t.Errorf("dayWidth: got %d, want %d", l.dayWidth, minDayWidth)
	}
}

func TestCardHitTesting(t *testing.T) {
	multi := timedTask("conf", 2, "", "")
	multi.EndDate = day(4)

	tasks := []*task.Task{
		{ID: "inbox1", Title: "inbox1"},
		{ID: "parked", Title: "parked", Location: task.LocationMemory},
		timedTask("tue", 1, "09:00:00", "11:00:00"),
		multi,
	}
	l := testLayout(tasks)

	tests := []struct {
		name       string
		p          drag.Point
		wantID     string
		wantOrigin drag.Origin
	}{
		{"inbox card", drag.Point{X: 5, Y: headerRow + 1}, "inbox1", drag.OriginInbox},
		{"memory card drags as unscheduled", drag.Point{X: 5, Y: float64(l.memoryTop() + 1)}, "parked", drag.OriginInbox},
		{"calendar card top row", drag.Point{X: 40, Y: firstHourRow + 1}, "tue", drag.OriginCalendar},
		{"calendar card spans duration", drag.Point{X: 40, Y: firstHourRow + 2}, "tue", drag.OriginCalendar},
		{"bar start handle", drag.Point{X: 48, Y: allDayRow}, "conf", drag.OriginResizeStart},
		{"bar end handle", drag.Point{X: 77, Y: allDayRow}, "conf", drag.OriginResizeEnd},
		{"bar body", drag.Point{X: 60, Y: allDayRow}, "conf", drag.OriginCalendar},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := l.cardAt(tc.p)
			if !ok {
				t.Fatalf("no card at %+v", tc.p)
			}
			if c.task.ID != tc.wantID {
				t.Errorf("task: got %q, want %q", c.task.ID, tc.wantID)
			}
			if c.origin != tc.wantOrigin {
				t.Errorf("origin: got %q, want %q", c.origin, tc.wantOrigin)
			}
		})
	}

	if _, ok := l.cardAt(drag.Point{X: 40, Y: firstHourRow + 10}); ok {
		t.Error("empty cell should have no card")
	}
}

func TestReorderZoneOverOverlapGroup(t *testing.T) {
	tasks := []*task.Task{
		timedTask("a", 1, "09:00:00", "10:00:00"),
		timedTask("b", 1, "09:30:00", "10:30:00"),
	}
	l := testLayout(tasks)

	zoneT, ok := findTarget(l, drag.TargetReorderZone, "")
	if !ok {
		t.Fatal("expected a reorder zone over the overlap group")
	}
	if len(zoneT.Zone.GroupTasks) != 2 {
		t.Fatalf("zone group size: got %d", len(zoneT.Zone.GroupTasks))
	}
	if zoneT.Rect.Y != firstHourRow+1 || zoneT.Rect.Height != 2 {
		t.Errorf("zone rect: got %+v", zoneT.Rect)
	}

	// A calendar drag over the group snaps to the zone, not the cards
	// beneath it.
	p := drag.Point{X: 40, Y: firstHourRow + 1}
	hits := drag.Resolve(drag.OriginCalendar, p, l.targets)
	if len(hits) != 1 || hits[0].Kind != drag.TargetReorderZone {
		t.Fatalf("calendar drag should resolve to the zone, got %+v", hits)
	}

	// The pointer's x offset in the cell picks the drop column.
	if col := l.zoneColumn(zoneT.Zone, drag.Point{X: 39, Y: 0}); col != 0 {
		t.Errorf("left edge column: got %d, want 0", col)
	}
	if col := l.zoneColumn(zoneT.Zone, drag.Point{X: 44, Y: 0}); col != 1 {
		t.Errorf("right half column: got %d, want 1", col)
	}
}

func TestSingleTasksGetNoZone(t *testing.T) {
	tasks := []*task.Task{
		timedTask("a", 1, "09:00:00", "10:00:00"),
		timedTask("b", 1, "14:00:00", "15:00:00"),
	}
	l := testLayout(tasks)
	if _, ok := findTarget(l, drag.TargetReorderZone, ""); ok {
		t.Error("non-overlapping tasks should not produce a reorder zone")
	}
}
