package drag

import (
	"context"
	"testing"
	"time"

	"github.com/javiermolinar/tablero/internal/task"
)

func TestConfirmPolicyHoldsInboxDrop(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, PolicyConfirm)
	e.Now = func() time.Time { return testNow }

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	startInboxDrag(e, inboxTask("t1"), slotTarget("slot-9", Rect{X: 0, Y: 0, Width: 20, Height: 20}, day, 9))

	if err := e.EndDrag(context.Background(), Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}
	if store.callCount() != 0 {
		t.Fatal("the drop must be held, not committed")
	}

	pending := e.Pending()
	if pending == nil {
		t.Fatal("no pending confirmation")
	}
	if pending.Task.ID != "t1" || !pending.Date.Equal(day) {
		t.Errorf("pending = %+v, want t1 on %v", pending, day)
	}
	if pending.Hour == nil || *pending.Hour != 9 {
		t.Errorf("pending hour = %v, want 9", pending.Hour)
	}
	fields := pending.Fields()
	if fields.StartTime == nil || *fields.StartTime != "09:00:00" {
		t.Errorf("proposed StartTime = %v, want 09:00:00", fields.StartTime)
	}
}

func TestConfirmCommitsWithOverrides(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, PolicyConfirm)
	e.Now = func() time.Time { return testNow }

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	startInboxDrag(e, inboxTask("t1"), slotTarget("slot-9", Rect{X: 0, Y: 0, Width: 20, Height: 20}, day, 9))
	if err := e.EndDrag(context.Background(), Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}

	energy := task.EnergyHigh
	override := ConfirmOverride{
		Title:   task.StringPtr("deep work block"),
		EndTime: task.StringPtr("11:30:00"),
		Energy:  &energy,
	}
	if err := e.Confirm(context.Background(), override); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	fields, ok := store.updated("t1")
	if !ok {
		t.Fatal("Confirm never reached the store")
	}
	if fields.DueDate == nil || !fields.DueDate.Equal(day) {
		t.Errorf("DueDate = %v, want %v", fields.DueDate, day)
	}
	if fields.Title == nil || *fields.Title != "deep work block" {
		t.Errorf("Title = %v, want the override", fields.Title)
	}
	if fields.StartTime == nil || *fields.StartTime != "09:00:00" {
		t.Errorf("StartTime = %v, want the proposed 09:00:00", fields.StartTime)
	}
	if fields.EndTime == nil || *fields.EndTime != "11:30:00" {
		t.Errorf("EndTime = %v, want the override", fields.EndTime)
	}
	if fields.Energy == nil || *fields.Energy != task.EnergyHigh {
		t.Errorf("Energy = %v, want high", fields.Energy)
	}
	if e.Pending() != nil {
		t.Error("pending must clear after Confirm")
	}
}

func TestDismissDropsPending(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, PolicyConfirm)
	e.Now = func() time.Time { return testNow }

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	startInboxDrag(e, inboxTask("t1"), dayTarget("day-1", Rect{X: 0, Y: 0, Width: 20, Height: 20}, day))
	if err := e.EndDrag(context.Background(), Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}
	if e.Pending() == nil {
		t.Fatal("no pending confirmation")
	}

	e.Dismiss()
	if e.Pending() != nil {
		t.Error("Dismiss must clear the pending drop")
	}
	if store.callCount() != 0 {
		t.Error("Dismiss must not touch the store")
	}
}

func TestConfirmWithoutPendingIsNoOp(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, PolicyConfirm)
	if err := e.Confirm(context.Background(), ConfirmOverride{}); err != nil {
		t.Fatalf("Confirm with nothing pending: %v", err)
	}
	if store.callCount() != 0 {
		t.Error("nothing to commit")
	}
}

func TestConfirmPolicyOnlyInterceptsInbox(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, PolicyConfirm)
	e.Now = func() time.Time { return testNow }

	src := calendarTask("t1", datePtr(2025, 3, 10), "09:00:00", "10:00:00")
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	e.Session().Start(src, OriginCalendar)
	e.Session().SetTargets([]Target{dayTarget("day-1", Rect{X: 0, Y: 0, Width: 20, Height: 20}, day)})

	if err := e.EndDrag(context.Background(), Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}
	if e.Pending() != nil {
		t.Error("rescheduling an already scheduled task never needs confirmation")
	}
	if _, ok := store.updated("t1"); !ok {
		t.Error("the calendar move must commit immediately")
	}
}
