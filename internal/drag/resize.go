package drag

import (
	"time"

	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/task"
)

// resizeUpdates applies the multi-day span edit for a resize drop. Each
// handle drags one endpoint along the day axis only; there is no
// time-of-day component.
//
// The endpoints can never invert. Dragging a handle past the opposite
// endpoint swaps the two dates, re-anchoring the task instead of
// producing an end-before-start range. Dragging a handle exactly onto the
// opposite endpoint collapses the task to a single day.
func resizeUpdates(drop Drop) []Update {
	src := drop.Task
	if src == nil || src.DueDate == nil {
		return nil
	}

	nextDate, ok := resizeTargetDate(drop)
	if !ok {
		return nil
	}
	nextDate = dateutil.TruncateToDay(nextDate)

	var fields task.Fields
	switch drop.Origin {
	case OriginResizeStart:
		fields = resizeStart(src, nextDate)
	case OriginResizeEnd:
		fields = resizeEnd(src, nextDate)
	default:
		return nil
	}

	if fields.IsZero() {
		return nil
	}
	return []Update{{TaskID: src.ID, Fields: fields}}
}

// resizeTargetDate prefers the provisional date captured during the drag
// and falls back to re-resolving from the final drop target.
func resizeTargetDate(drop Drop) (time.Time, bool) {
	if drop.ProvisionalDate != nil {
		return *drop.ProvisionalDate, true
	}
	if drop.Target == nil {
		return time.Time{}, false
	}
	return resolveDate(*drop.Target)
}

// resizeStart moves the task's first day. The last day acts as the
// anchor: meeting it collapses to single-day, passing it swaps.
func resizeStart(src *task.Task, nextDate time.Time) task.Fields {
	anchor := *src.DueDate
	if src.EndDate != nil {
		anchor = *src.EndDate
	}

	var fields task.Fields
	switch {
	case dateutil.SameDay(nextDate, anchor):
		if src.DueDate == nil || !dateutil.SameDay(*src.DueDate, nextDate) {
			fields.DueDate = task.DatePtr(nextDate)
		}
		fields.ClearEndDate = src.EndDate != nil
	case nextDate.After(anchor):
		fields.DueDate = task.DatePtr(anchor)
		fields.EndDate = task.DatePtr(nextDate)
	default:
		fields.DueDate = task.DatePtr(nextDate)
		if src.EndDate == nil {
			// Single-day task grows backwards; the old due date
			// becomes the end of the span.
			fields.EndDate = task.DatePtr(anchor)
		}
	}
	return fields
}

// resizeEnd moves the task's last day, symmetric to resizeStart with the
// due date as the anchor.
func resizeEnd(src *task.Task, nextDate time.Time) task.Fields {
	anchor := *src.DueDate

	var fields task.Fields
	switch {
	case dateutil.SameDay(nextDate, anchor):
		fields.ClearEndDate = src.EndDate != nil
	case nextDate.Before(anchor):
		fields.DueDate = task.DatePtr(nextDate)
		fields.EndDate = task.DatePtr(anchor)
	default:
		if src.EndDate == nil || !dateutil.SameDay(*src.EndDate, nextDate) {
			fields.EndDate = task.DatePtr(nextDate)
		}
	}
	return fields
}
