package task

import "context"

// Updater is the single persistence primitive the drag engine consumes.
// Unspecified fields are left untouched; clear flags map to explicit NULLs.
type Updater interface {
	UpdateTask(ctx context.Context, id string, fields Fields) error
}

// Repository defines the storage interface for tasks.
type Repository interface {
	Updater

	// CreateTask adds a new task, assigning its ID.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by ID.
	// Returns ErrTaskNotFound if no task exists with that ID.
	GetTask(ctx context.Context, id string) (*Task, error)

	// ListTasks returns every task visible to the current user,
	// including shared tasks owned by others.
	ListTasks(ctx context.Context) ([]*Task, error)

	// DeleteTask removes a task by ID.
	DeleteTask(ctx context.Context, id string) error

	// Close releases any resources held by the repository.
	Close() error
}
