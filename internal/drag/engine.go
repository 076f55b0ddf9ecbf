package drag

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/javiermolinar/tablero/internal/task"
)

// Policy selects how inbox-task schedule drops are committed.
type Policy string

const (
	// PolicyImmediate applies the derived fields as soon as the drag
	// ends. This is the default.
	PolicyImmediate Policy = "immediate"
	// PolicyConfirm holds inbox drops in a pending confirmation the user
	// must explicitly commit or dismiss.
	PolicyConfirm Policy = "confirm"
)

// Valid returns true if the policy is a known value.
func (p Policy) Valid() bool {
	return p == PolicyImmediate || p == PolicyConfirm
}

// Engine orchestrates a drag gesture end to end: it owns the session,
// classifies completed drops and applies the derived updates through the
// persistence collaborator.
type Engine struct {
	session *Session
	store   task.Updater
	policy  Policy
	pending *Pending

	// OnScheduled, when set, is notified after any successful update
	// resulting from a drag. Fire and forget.
	OnScheduled func()

	// Now is injectable for testing.
	Now func() time.Time
}

// NewEngine creates an engine bound to the given persistence collaborator.
func NewEngine(store task.Updater, policy Policy) *Engine {
	if !policy.Valid() {
		policy = PolicyImmediate
	}
	return &Engine{
		session: NewSession(),
		store:   store,
		policy:  policy,
		Now:     time.Now,
	}
}

// Session exposes the drag session for the gesture's start/move handlers
// and for rendering snapshots.
func (e *Engine) Session() *Session {
	return e.session
}

// EndDrag completes the gesture at the given pointer position. The
// session's transient state clears synchronously before any persistence
// call settles; a failed update therefore never leaves a stale drag on
// screen, only a store the next data refresh will reconcile.
//
// Callers that drive the session from an event loop but persist from a
// worker should instead call Session().End themselves and hand the Drop
// to ApplyDrop, keeping all session mutation on the loop.
func (e *Engine) EndDrag(ctx context.Context, p Point) error {
	drop, ok := e.session.End(p)
	if !ok {
		return nil
	}
	return e.ApplyDrop(ctx, drop)
}

// ApplyDrop classifies a completed drop and commits the derived updates,
// or parks the drop for confirmation under PolicyConfirm. It touches no
// session state.
func (e *Engine) ApplyDrop(ctx context.Context, drop Drop) error {
	if e.policy == PolicyConfirm && drop.Origin == OriginInbox {
		if pending := newPending(drop, e.Now()); pending != nil {
			e.pending = pending
			return nil
		}
	}

	return e.apply(ctx, Classify(drop, e.Now()))
}

// apply issues the persistence calls for the derived updates. A reorder
// produces one call per affected task; those are dispatched concurrently
// and best-effort: one rejection neither prevents nor rolls back the
// others, and the next read from the store reflects whatever subset
// succeeded.
func (e *Engine) apply(ctx context.Context, updates []Update) error {
	switch len(updates) {
	case 0:
		return nil
	case 1:
		if err := e.store.UpdateTask(ctx, updates[0].TaskID, updates[0].Fields); err != nil {
			return err
		}
		e.notifyScheduled()
		return nil
	}

	errs := make([]error, len(updates))
	var wg sync.WaitGroup
	for i, u := range updates {
		wg.Add(1)
		go func(i int, u Update) {
			defer wg.Done()
			errs[i] = e.store.UpdateTask(ctx, u.TaskID, u.Fields)
		}(i, u)
	}
	wg.Wait()

	anySucceeded := false
	for _, err := range errs {
		if err == nil {
			anySucceeded = true
		}
	}
	if anySucceeded {
		e.notifyScheduled()
	}
	return errors.Join(errs...)
}

func (e *Engine) notifyScheduled() {
	if e.OnScheduled != nil {
		e.OnScheduled()
	}
}
