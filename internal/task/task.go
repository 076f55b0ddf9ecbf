// Package task defines the core domain types for tablero.
package task

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidEnergy     = errors.New("energy must be 'low', 'medium' or 'high'")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM or HH:MM:SS format")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
	ErrEndDateBeforeDue  = errors.New("end date must be on or after due date")
	ErrTimeWithoutStart  = errors.New("end time requires a start time")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Energy represents the energy level a task demands.
// It drives visual grouping and filtering, never scheduling decisions.
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

// Valid returns true if the energy is a valid value.
func (e Energy) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	default:
		return false
	}
}

// Location marks where a task lives relative to the active schedule.
type Location string

const (
	// LocationSchedule is the normal state: inbox or calendar.
	LocationSchedule Location = ""
	// LocationMemory is the holding area for parked tasks.
	// Tasks here carry no date or times.
	LocationMemory Location = "memory"
)

// Task is the scheduling unit.
//
// A task with a nil DueDate is an inbox task. A task with a DueDate is a
// calendar task; it additionally has an EndDate when it spans multiple days.
// StartTime and EndTime are "HH:MM:SS" strings; empty means untimed, so the
// task floats in the day's untimed list instead of the time grid.
type Task struct {
	ID           string
	Title        string
	DueDate      *time.Time
	EndDate      *time.Time
	StartTime    string
	EndTime      string
	Energy       Energy
	Location     Location
	DisplayOrder int
	OwnerID      string
	IsShared     bool
	CreatedAt    time.Time
}

// New creates an unscheduled inbox task with validation.
func New(title string, energy Energy, ownerID string) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !energy.Valid() {
		return nil, ErrInvalidEnergy
	}
	return &Task{
		Title:     title,
		Energy:    energy,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}, nil
}

// Validate checks the task invariants.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if t.Energy != "" && !t.Energy.Valid() {
		return ErrInvalidEnergy
	}
	if t.StartTime != "" {
		if _, ok := ParseTimeToHours(t.StartTime); !ok {
			return ErrInvalidTimeFormat
		}
	}
	if t.EndTime != "" {
		if t.StartTime == "" {
			return ErrTimeWithoutStart
		}
		end, ok := ParseTimeToHours(t.EndTime)
		if !ok {
			return ErrInvalidTimeFormat
		}
		start, _ := ParseTimeToHours(t.StartTime)
		if end <= start {
			return ErrEndBeforeStart
		}
	}
	if t.EndDate != nil {
		if t.DueDate == nil || t.EndDate.Before(*t.DueDate) {
			return ErrEndDateBeforeDue
		}
	}
	return nil
}

// Normalize clears EndDate when it equals DueDate: such a task is
// logically single-day.
func (t *Task) Normalize() {
	if t.DueDate != nil && t.EndDate != nil && sameDay(*t.DueDate, *t.EndDate) {
		t.EndDate = nil
	}
}

// IsInbox returns true if the task is unscheduled and not parked in memory.
func (t *Task) IsInbox() bool {
	return t.DueDate == nil && t.Location != LocationMemory
}

// IsCalendar returns true if the task has a due date.
func (t *Task) IsCalendar() bool {
	return t.DueDate != nil
}

// IsMultiDay returns true if the task spans more than one day.
func (t *Task) IsMultiDay() bool {
	return t.EndDate != nil
}

// IsTimed returns true if the task sits on the time grid.
func (t *Task) IsTimed() bool {
	return t.StartTime != ""
}

// InMemory returns true if the task is parked in the holding area.
func (t *Task) InMemory() bool {
	return t.Location == LocationMemory
}

// IsNight reports whether the task's start time falls outside the focus
// window. Untimed tasks are never night tasks.
func (t *Task) IsNight(focusStart, focusEnd string) bool {
	start, ok := ParseTimeToHours(t.StartTime)
	if !ok {
		return false
	}
	fs, okS := ParseTimeToHours(focusStart)
	fe, okE := ParseTimeToHours(focusEnd)
	if !okS || !okE {
		return false
	}
	return start < fs || start >= fe
}

// Duration returns the task's duration in fractional hours.
// Untimed tasks and tasks without an end time report the default duration.
func (t *Task) Duration() float64 {
	return DurationHours(t.StartTime, t.EndTime)
}

// SpanDays returns the number of days the task occupies, inclusive.
// Single-day and unscheduled tasks report 1.
func (t *Task) SpanDays() int {
	if t.DueDate == nil || t.EndDate == nil {
		return 1
	}
	return DaysBetween(*t.DueDate, *t.EndDate) + 1
}

// DaysBetween returns the whole-day offset from a to b.
// Negative if b is before a.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
