// Package drag implements the drag-and-drop scheduling engine: collision
// resolution between the pointer and drop targets, per-gesture session
// state, and the intent classifier that turns a completed drop into task
// field updates.
package drag

import (
	"math"
	"strings"
	"time"

	"github.com/javiermolinar/tablero/internal/task"
)

// Point is a pointer position in the rendering surface's coordinates.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// TargetKind discriminates drop target descriptors.
type TargetKind string

const (
	TargetTimeSlot     TargetKind = "time-slot"
	TargetDay          TargetKind = "day"
	TargetMonth        TargetKind = "month"
	TargetTask         TargetKind = "calendar-task"
	TargetReorderZone  TargetKind = "reorder-zone"
	TargetMemory       TargetKind = "memory"
	TargetNightSection TargetKind = "night-section"
	TargetResizeHandle TargetKind = "resize-handle"
)

// NightSection identifies the off-focus strips of the day grid.
type NightSection string

const (
	// NightBefore is the strip before the focus window starts.
	NightBefore NightSection = "night-before"
	// NightAfter is the strip after the focus window ends.
	NightAfter NightSection = "night-after"
)

// Default start hours for tasks dropped on a night section.
const (
	NightBeforeStartHour = 2
	NightAfterStartHour  = 23
)

// ReorderZone is the payload of a reorder-zone target: a thin strip at the
// boundary between two column-adjacent overlapping tasks.
type ReorderZone struct {
	GroupTasks  []*task.Task
	ColumnIndex int
	GroupTop    float64
	GroupHeight float64
}

// Target describes one drop candidate. Targets are not persisted; the
// rendering layer constructs them per frame during a drag. Only the payload
// fields matching Kind are meaningful.
type Target struct {
	ID   string
	Kind TargetKind
	Rect Rect

	Date  time.Time
	Hour  int
	Month time.Month
	Night NightSection
	Task  *task.Task
	Zone  *ReorderZone
}

// resolveDate extracts a calendar date from a target. It tries, in order:
// the explicit date payload, a literal "YYYY-MM-DD" identifier, a date
// suffix on a segment identifier, and the due date of a task target.
func resolveDate(t Target) (time.Time, bool) {
	if !t.Date.IsZero() {
		return t.Date, true
	}
	if d, err := time.Parse("2006-01-02", t.ID); err == nil {
		return d, true
	}
	if i := strings.LastIndex(t.ID, ":"); i >= 0 {
		if d, err := time.Parse("2006-01-02", t.ID[i+1:]); err == nil {
			return d, true
		}
	}
	if t.Task != nil && t.Task.DueDate != nil {
		return *t.Task.DueDate, true
	}
	return time.Time{}, false
}

// isDayLike returns true if the target identifies a whole day: either a
// day-kind target or one whose identifier carries a date.
func isDayLike(t Target) bool {
	if t.Kind == TargetDay {
		return true
	}
	if _, err := time.Parse("2006-01-02", t.ID); err == nil {
		return true
	}
	return false
}
