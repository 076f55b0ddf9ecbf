package drag

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/javiermolinar/tablero/internal/task"
)

// fakeStore records update calls and can be told to fail for given ids.
type fakeStore struct {
	mu      sync.Mutex
	calls   map[string]task.Fields
	failIDs map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{calls: make(map[string]task.Fields), failIDs: make(map[string]error)}
}

func (f *fakeStore) UpdateTask(_ context.Context, id string, fields task.Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failIDs[id]; ok {
		return err
	}
	f.calls[id] = fields
	return nil
}

func (f *fakeStore) updated(id string) (task.Fields, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fields, ok := f.calls[id]
	return fields, ok
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func startInboxDrag(e *Engine, src *task.Task, target Target) {
	e.Session().Start(src, OriginInbox)
	e.Session().SetTargets([]Target{target})
	e.Session().Move(Point{X: 5, Y: 5})
}

func TestEngineImmediateDrop(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, PolicyImmediate)
	e.Now = func() time.Time { return testNow }

	scheduled := 0
	e.OnScheduled = func() { scheduled++ }

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	startInboxDrag(e, inboxTask("t1"), slotTarget("slot-9", Rect{X: 0, Y: 0, Width: 20, Height: 20}, day, 9))

	if err := e.EndDrag(context.Background(), Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}
	fields, ok := store.updated("t1")
	if !ok {
		t.Fatal("store never saw the update")
	}
	if fields.DueDate == nil || !fields.DueDate.Equal(day) {
		t.Errorf("DueDate = %v, want %v", fields.DueDate, day)
	}
	if scheduled != 1 {
		t.Errorf("OnScheduled fired %d times, want 1", scheduled)
	}
	if e.Session().State() != StateIdle {
		t.Error("session should be idle after EndDrag")
	}
}

func TestEngineEndDragWhileIdle(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, PolicyImmediate)
	if err := e.EndDrag(context.Background(), Point{}); err != nil {
		t.Fatalf("EndDrag on idle session: %v", err)
	}
	if store.callCount() != 0 {
		t.Error("no gesture, no store calls")
	}
}

func TestEngineReleaseOverNothing(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store, PolicyImmediate)
	e.Session().Start(inboxTask("t1"), OriginInbox)

	if err := e.EndDrag(context.Background(), Point{X: 900, Y: 900}); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}
	if store.callCount() != 0 {
		t.Error("a release over nothing must not hit the store")
	}
}

func TestEngineSingleUpdateFailure(t *testing.T) {
	store := newFakeStore()
	store.failIDs["t1"] = task.ErrTaskNotFound
	e := NewEngine(store, PolicyImmediate)
	e.Now = func() time.Time { return testNow }

	scheduled := 0
	e.OnScheduled = func() { scheduled++ }

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	startInboxDrag(e, inboxTask("t1"), dayTarget("day-1", Rect{X: 0, Y: 0, Width: 20, Height: 20}, day))

	err := e.EndDrag(context.Background(), Point{X: 5, Y: 5})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("EndDrag error = %v, want ErrTaskNotFound", err)
	}
	if scheduled != 0 {
		t.Error("OnScheduled must not fire for a failed update")
	}
	if e.Session().State() != StateIdle {
		t.Error("session clears even when the store rejects")
	}
}

func TestEngineReorderBestEffort(t *testing.T) {
	a := &task.Task{ID: "a", StartTime: "09:00:00", EndTime: "10:00:00", DisplayOrder: 0}
	b := &task.Task{ID: "b", StartTime: "09:00:00", EndTime: "10:00:00", DisplayOrder: 10}
	c := &task.Task{ID: "c", StartTime: "09:00:00", EndTime: "10:00:00", DisplayOrder: 20}
	zone := &ReorderZone{GroupTasks: []*task.Task{a, b, c}, ColumnIndex: 2}

	store := newFakeStore()
	wantErr := errors.New("write rejected")
	store.failIDs["b"] = wantErr

	e := NewEngine(store, PolicyImmediate)
	e.Now = func() time.Time { return testNow }
	scheduled := 0
	e.OnScheduled = func() { scheduled++ }

	e.Session().Start(a, OriginCalendar)
	e.Session().SetTargets([]Target{zoneTarget("zone-1", Rect{X: 0, Y: 0, Width: 20, Height: 20}, zone)})
	e.Session().Move(Point{X: 5, Y: 5})

	err := e.EndDrag(context.Background(), Point{X: 5, Y: 5})
	if !errors.Is(err, wantErr) {
		t.Fatalf("EndDrag error = %v, want the store rejection", err)
	}
	// The other writes still went through.
	if store.callCount() == 0 {
		t.Error("the rejection must not block the sibling updates")
	}
	if scheduled != 1 {
		t.Errorf("OnScheduled fired %d times, want 1 for the partial success", scheduled)
	}
}

func TestEngineInvalidPolicyFallsBack(t *testing.T) {
	e := NewEngine(newFakeStore(), Policy("whenever"))
	if e.policy != PolicyImmediate {
		t.Errorf("policy = %q, want fallback to immediate", e.policy)
	}
}
