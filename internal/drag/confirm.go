package drag

import (
	"context"
	"time"

	"github.com/javiermolinar/tablero/internal/task"
)

// Pending captures an inbox-task drop awaiting explicit confirmation
// under PolicyConfirm. The drag is fully reversible until Confirm.
type Pending struct {
	Task *task.Task
	Date time.Time
	Hour *int

	fields task.Fields
}

// newPending derives the proposed fields for a confirmable drop. Returns
// nil when the drop would be a no-op anyway.
func newPending(drop Drop, now time.Time) *Pending {
	updates := Classify(drop, now)
	if len(updates) != 1 || updates[0].TaskID != drop.Task.ID {
		return nil
	}
	fields := updates[0].Fields
	if fields.DueDate == nil {
		return nil
	}

	p := &Pending{
		Task:   drop.Task,
		Date:   *fields.DueDate,
		fields: fields,
	}
	if drop.Target != nil && drop.Target.Kind == TargetTimeSlot {
		h := drop.Target.Hour
		p.Hour = &h
	}
	return p
}

// Fields returns the proposed update, pre-populated the same way an
// immediate commit would derive it.
func (p *Pending) Fields() task.Fields {
	return p.fields
}

// ConfirmOverride carries the manual edits a user may make in the
// confirmation form before committing.
type ConfirmOverride struct {
	Title     *string
	StartTime *string
	EndTime   *string
	Energy    *task.Energy
	Location  *task.Location
	IsShared  *bool
}

// Pending returns the drop awaiting confirmation, or nil.
func (e *Engine) Pending() *Pending {
	return e.pending
}

// Confirm commits the pending drop as a single combined update, merging
// in any manual overrides.
func (e *Engine) Confirm(ctx context.Context, override ConfirmOverride) error {
	if e.pending == nil {
		return nil
	}
	pending := e.pending
	e.pending = nil

	fields := pending.fields
	if override.Title != nil {
		fields.Title = override.Title
	}
	if override.StartTime != nil {
		fields.StartTime = override.StartTime
	}
	if override.EndTime != nil {
		fields.EndTime = override.EndTime
	}
	if override.Energy != nil {
		fields.Energy = override.Energy
	}
	if override.Location != nil {
		fields.Location = override.Location
	}
	if override.IsShared != nil {
		fields.IsShared = override.IsShared
	}

	return e.apply(ctx, []Update{{TaskID: pending.Task.ID, Fields: fields}})
}

// Dismiss drops the pending confirmation without any update at all.
func (e *Engine) Dismiss() {
	e.pending = nil
}
