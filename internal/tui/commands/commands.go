// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tablero/internal/drag"
	"github.com/javiermolinar/tablero/internal/task"
)

// TasksLoadedMsg is sent when the task list is loaded.
type TasksLoadedMsg struct {
	Tasks []*task.Task
}

// DropAppliedMsg is sent when a completed drag has been committed.
type DropAppliedMsg struct{}

// DropHeldMsg is sent when a drop is parked for confirmation instead.
type DropHeldMsg struct{}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// LoadTasks loads every task from the store.
func LoadTasks(repo task.Repository) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repo.ListTasks(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return TasksLoadedMsg{Tasks: tasks}
	}
}

// ApplyDrop commits a completed drop. The release handler ends the
// session synchronously on the update loop and hands only the Drop value
// here, so the command goroutine never touches session state.
func ApplyDrop(engine *drag.Engine, drop drag.Drop) tea.Cmd {
	return func() tea.Msg {
		if err := engine.ApplyDrop(context.Background(), drop); err != nil {
			return ErrMsg{Err: err}
		}
		if engine.Pending() != nil {
			return DropHeldMsg{}
		}
		return DropAppliedMsg{}
	}
}

// ConfirmDrop commits the pending confirmation with the given overrides.
func ConfirmDrop(engine *drag.Engine, override drag.ConfirmOverride) tea.Cmd {
	return func() tea.Msg {
		if err := engine.Confirm(context.Background(), override); err != nil {
			return ErrMsg{Err: err}
		}
		return DropAppliedMsg{}
	}
}
