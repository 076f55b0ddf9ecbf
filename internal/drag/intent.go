package drag

import (
	"math"
	"time"

	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/reorder"
	"github.com/javiermolinar/tablero/internal/task"
)

// Update pairs a task id with its derived field changes.
type Update struct {
	TaskID string
	Fields task.Fields
}

// Classify is the decision table at the heart of the engine: keyed first
// on origin, then on target kind. Each branch is mutually exclusive and
// the first match wins. A gesture matching no branch returns nil - a
// silent no-op, since many drag releases legitimately land on nothing
// meaningful.
func Classify(drop Drop, now time.Time) []Update {
	if drop.Task == nil {
		return nil
	}

	// Resize handles win over everything: any target resolving to a date.
	if drop.Origin.IsResize() {
		return resizeUpdates(drop)
	}

	if drop.Target == nil {
		return nil
	}
	target := *drop.Target

	switch {
	case target.Kind == TargetReorderZone && target.Zone != nil:
		return reorderUpdates(drop.Task, target.Zone)
	case target.Kind == TargetMemory:
		return memoryUpdates(drop.Task)
	case target.Kind == TargetNightSection:
		return nightSectionUpdates(drop.Task, target.Night)
	}

	switch drop.Origin {
	case OriginNight:
		return nightTaskUpdates(drop.Task, target)
	case OriginInbox:
		return inboxUpdates(drop.Task, target, now)
	case OriginCalendar:
		return calendarUpdates(drop.Task, target)
	}
	return nil
}

// reorderUpdates recomputes display orders for the zone's group. No date
// or time changes.
func reorderUpdates(src *task.Task, zone *ReorderZone) []Update {
	changes := reorder.PlanReorder(zone.GroupTasks, src.ID, zone.ColumnIndex)
	if len(changes) == 0 {
		return nil
	}
	updates := make([]Update, 0, len(changes))
	for _, c := range changes {
		updates = append(updates, Update{
			TaskID: c.TaskID,
			Fields: task.Fields{DisplayOrder: task.IntPtr(c.DisplayOrder)},
		})
	}
	return updates
}

// memoryUpdates parks a task in the holding area: date and times cleared,
// location marker set.
func memoryUpdates(src *task.Task) []Update {
	loc := task.LocationMemory
	return []Update{{
		TaskID: src.ID,
		Fields: task.Fields{
			ClearDueDate: true,
			ClearEndDate: true,
			StartTime:    task.StringPtr(""),
			EndTime:      task.StringPtr(""),
			Location:     &loc,
		},
	}}
}

// nightSectionUpdates moves a task's time window into a night section:
// 02:00 for the night before the focus window, 23:00 for the night after.
// An existing duration is preserved, otherwise the default applies. The
// date is untouched.
func nightSectionUpdates(src *task.Task, section NightSection) []Update {
	startHour := float64(NightBeforeStartHour)
	if section == NightAfter {
		startHour = float64(NightAfterStartHour)
	}
	duration := src.Duration()
	end := startHour + duration
	if end > 24 {
		end = 24
	}
	return []Update{{
		TaskID: src.ID,
		Fields: task.Fields{
			StartTime: task.StringPtr(task.HoursToTimeString(startHour)),
			EndTime:   task.StringPtr(task.HoursToTimeString(end)),
		},
	}}
}

// nightTaskUpdates handles drops of a night task onto the day grid.
func nightTaskUpdates(src *task.Task, target Target) []Update {
	switch {
	case target.Kind == TargetTimeSlot:
		date, ok := resolveDate(target)
		if !ok {
			return nil
		}
		start := float64(target.Hour)
		end := start + src.Duration()
		if end > 24 {
			end = 24
		}
		return []Update{{
			TaskID: src.ID,
			Fields: task.Fields{
				DueDate:   task.DatePtr(date),
				StartTime: task.StringPtr(task.HoursToTimeString(start)),
				EndTime:   task.StringPtr(task.HoursToTimeString(end)),
			},
		}}
	case isDayLike(target):
		// Date only; the night time window stays as it is.
		date, ok := resolveDate(target)
		if !ok {
			return nil
		}
		return []Update{{
			TaskID: src.ID,
			Fields: task.Fields{DueDate: task.DatePtr(date)},
		}}
	}
	return nil
}

// inboxUpdates schedules an unscheduled task. Inbox tasks have no prior
// schedule to protect, so a time-slot drop always takes the fixed
// one-hour duration.
func inboxUpdates(src *task.Task, target Target, now time.Time) []Update {
	switch {
	case target.Kind == TargetTimeSlot:
		date, ok := resolveDate(target)
		if !ok {
			return nil
		}
		start := float64(target.Hour)
		return []Update{{
			TaskID: src.ID,
			Fields: task.Fields{
				DueDate:   task.DatePtr(date),
				StartTime: task.StringPtr(task.HoursToTimeString(start)),
				EndTime:   task.StringPtr(task.HoursToTimeString(start + task.DefaultDurationHours)),
			},
		}}
	case target.Kind == TargetMonth:
		date := dateutil.MonthStart(target.Month, now)
		return []Update{{
			TaskID: src.ID,
			Fields: task.Fields{DueDate: task.DatePtr(date)},
		}}
	case isDayLike(target):
		date, ok := resolveDate(target)
		if !ok {
			return nil
		}
		return []Update{{
			TaskID: src.ID,
			Fields: task.Fields{DueDate: task.DatePtr(date)},
		}}
	}
	return nil
}

// calendarUpdates reschedules an already-scheduled task. The target may
// resolve a date (slot, day, another task's position) and optionally an
// hour (slot, or inherited from another task's start time).
func calendarUpdates(src *task.Task, target Target) []Update {
	var (
		nextDate time.Time
		dateOK   bool
		hour     int
		hourOK   bool
	)

	switch {
	case target.Kind == TargetTimeSlot:
		nextDate, dateOK = resolveDate(target)
		hour, hourOK = target.Hour, true
	case target.Kind == TargetTask && target.Task != nil:
		if target.Task.DueDate != nil {
			nextDate, dateOK = *target.Task.DueDate, true
		}
		if h, ok := task.ParseTimeToHours(target.Task.StartTime); ok {
			hour, hourOK = int(math.Floor(h)), true
		}
	default:
		nextDate, dateOK = resolveDate(target)
	}

	if !dateOK {
		return nil
	}

	var fields task.Fields

	// Only write the due date when it actually changes; spurious no-op
	// updates would still hit the store.
	if src.DueDate == nil || !dateutil.SameDay(*src.DueDate, nextDate) {
		fields.DueDate = task.DatePtr(nextDate)

		// A multi-day span keeps its length: the end date shifts by the
		// same day offset as the due date.
		if src.EndDate != nil && src.DueDate != nil {
			offset := task.DaysBetween(*src.DueDate, nextDate)
			shifted := src.EndDate.AddDate(0, 0, offset)
			fields.EndDate = task.DatePtr(shifted)
		}
	}

	if hourOK {
		start := float64(hour)
		fields.StartTime = task.StringPtr(task.HoursToTimeString(start))
		if src.StartTime != "" && src.EndTime != "" {
			// Preserve the original duration to the minute.
			minutes := math.Round(task.DurationHours(src.StartTime, src.EndTime) * 60)
			fields.EndTime = task.StringPtr(task.HoursToTimeString(start + minutes/60))
		}
	}

	if fields.IsZero() {
		return nil
	}
	return []Update{{TaskID: src.ID, Fields: fields}}
}
