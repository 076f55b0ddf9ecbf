package drag

import (
	"time"

	"github.com/javiermolinar/tablero/internal/task"
)

// State represents the session's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResizing
)

// Drop captures everything the intent classifier needs from a completed
// gesture.
type Drop struct {
	Task   *task.Task
	Origin Origin

	// Target is the top collision candidate at pointer-up. Nil when the
	// drag was released over nothing.
	Target *Target

	// ProvisionalDate is the date tracked during a resize drag. The end
	// handler prefers it over re-deriving from Target, because the final
	// target at pointer-up may differ subtly from what the user visually
	// tracked during the drag.
	ProvisionalDate *time.Time
}

// Session holds the transient state of one drag gesture. It is owned by
// the engine and threaded through the gesture's event handlers; rendering
// collaborators only see read-only snapshots through its accessors.
//
// The gesture's visual state machine is synchronous and single-threaded:
// Start, Move and End run on the UI event loop, so the session carries no
// locking.
type Session struct {
	state    State
	active   *task.Task
	origin   Origin
	resizeID string

	targets []Target

	hover           []Target
	reorderHover    *ReorderZone
	provisionalDate *time.Time
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{}
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Start begins a drag gesture, capturing the task and its origin
// classification. For resize origins the task id being resized is
// recorded as well.
func (s *Session) Start(t *task.Task, origin Origin) {
	s.clearTransient()
	s.active = t
	s.origin = origin
	s.resizeID = ""
	if origin.IsResize() {
		s.state = StateResizing
		if t != nil {
			s.resizeID = t.ID
		}
	} else {
		s.state = StateDragging
	}
}

// SetTargets replaces the registered drop candidates. The rendering layer
// calls this as it lays out a frame; registration order matters for
// containment tie-breaks.
func (s *Session) SetTargets(targets []Target) {
	s.targets = targets
}

// RegisterTarget appends one drop candidate.
func (s *Session) RegisterTarget(t Target) {
	s.targets = append(s.targets, t)
}

// Move re-runs collision resolution for the new pointer position and
// updates the hover snapshots exposed to the rendering layer.
func (s *Session) Move(p Point) {
	if s.state == StateIdle {
		return
	}
	s.hover = Resolve(s.origin, p, s.targets)

	s.reorderHover = nil
	if len(s.hover) > 0 && s.hover[0].Kind == TargetReorderZone {
		s.reorderHover = s.hover[0].Zone
	}

	if s.state == StateResizing && len(s.hover) > 0 {
		if d, ok := resolveDate(s.hover[0]); ok {
			d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
			s.provisionalDate = &d
		}
	}
}

// End finishes the gesture. All transient highlight and provisional state
// is cleared unconditionally, even when the classifier later declines to
// produce an update. Returns false if no gesture was in progress.
func (s *Session) End(p Point) (Drop, bool) {
	if s.state == StateIdle {
		return Drop{}, false
	}

	resolved := Resolve(s.origin, p, s.targets)
	drop := Drop{
		Task:            s.active,
		Origin:          s.origin,
		ProvisionalDate: s.provisionalDate,
	}
	if len(resolved) > 0 {
		top := resolved[0]
		drop.Target = &top
	}

	s.reset()
	return drop, true
}

// Cancel aborts the gesture with no drop. Releasing a drag over nothing is
// a normal outcome, not an error.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.state = StateIdle
	s.active = nil
	s.origin = ""
	s.resizeID = ""
	s.targets = nil
	s.clearTransient()
}

func (s *Session) clearTransient() {
	s.hover = nil
	s.reorderHover = nil
	s.provisionalDate = nil
}

// ActiveTask returns the task being dragged, or nil.
func (s *Session) ActiveTask() *task.Task {
	return s.active
}

// ActiveOrigin returns the origin classification of the current drag.
func (s *Session) ActiveOrigin() Origin {
	return s.origin
}

// ResizeTaskID returns the id of the task being resized, or "".
func (s *Session) ResizeTaskID() string {
	return s.resizeID
}

// ActiveDuration returns the dragged task's duration in hours, for
// drawing duration-matched highlight overlays. Zero when idle.
func (s *Session) ActiveDuration() float64 {
	if s.active == nil {
		return 0
	}
	return s.active.Duration()
}

// Hovered returns the current ordered collision result.
func (s *Session) Hovered() []Target {
	return s.hover
}

// ReorderHover returns the reorder-zone descriptor currently hovered,
// or nil. The rendering layer uses it to draw the drop-indicator line.
func (s *Session) ReorderHover() *ReorderZone {
	return s.reorderHover
}

// ProvisionalDate returns the resize target date tracked so far, or nil.
// Exposed for drawing a live preview of the resized span.
func (s *Session) ProvisionalDate() *time.Time {
	return s.provisionalDate
}
