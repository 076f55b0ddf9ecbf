package task

import "time"

// Fields describes a partial update to a task. A nil pointer means
// "leave untouched". Clearing a field is distinct from leaving it alone:
// dates use the explicit Clear flags, times are cleared by pointing at an
// empty string.
type Fields struct {
	Title        *string
	DueDate      *time.Time
	ClearDueDate bool
	EndDate      *time.Time
	ClearEndDate bool
	StartTime    *string
	EndTime      *string
	Energy       *Energy
	Location     *Location
	DisplayOrder *int
	IsShared     *bool
}

// IsZero returns true if the update carries no changes. The engine uses
// this to suppress vacuous persistence calls.
func (f Fields) IsZero() bool {
	return f.Title == nil &&
		f.DueDate == nil && !f.ClearDueDate &&
		f.EndDate == nil && !f.ClearEndDate &&
		f.StartTime == nil &&
		f.EndTime == nil &&
		f.Energy == nil &&
		f.Location == nil &&
		f.DisplayOrder == nil &&
		f.IsShared == nil
}

// Apply returns a copy of t with the update applied.
func (f Fields) Apply(t Task) Task {
	if f.Title != nil {
		t.Title = *f.Title
	}
	switch {
	case f.ClearDueDate:
		t.DueDate = nil
	case f.DueDate != nil:
		d := *f.DueDate
		t.DueDate = &d
	}
	switch {
	case f.ClearEndDate:
		t.EndDate = nil
	case f.EndDate != nil:
		d := *f.EndDate
		t.EndDate = &d
	}
	if f.StartTime != nil {
		t.StartTime = *f.StartTime
	}
	if f.EndTime != nil {
		t.EndTime = *f.EndTime
	}
	if f.Energy != nil {
		t.Energy = *f.Energy
	}
	if f.Location != nil {
		t.Location = *f.Location
	}
	if f.DisplayOrder != nil {
		t.DisplayOrder = *f.DisplayOrder
	}
	if f.IsShared != nil {
		t.IsShared = *f.IsShared
	}
	return t
}

// StringPtr is a convenience for building Fields literals.
func StringPtr(s string) *string { return &s }

// IntPtr is a convenience for building Fields literals.
func IntPtr(i int) *int { return &i }

// DatePtr returns a pointer to the given date truncated to midnight.
func DatePtr(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &d
}
