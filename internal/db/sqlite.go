// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/tablero/internal/task"
)

const dateFormat = "2006-01-02"

// SQLite implements task.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateTask adds a new task, assigning a fresh id when the task has none.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO tasks (
			id, title, due_date, end_date, start_time, end_time,
			energy, location, display_order, owner_id, is_shared, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		nullDate(t.DueDate),
		nullDate(t.EndDate),
		nullString(t.StartTime),
		nullString(t.EndTime),
		nullString(string(t.Energy)),
		string(t.Location),
		t.DisplayOrder,
		t.OwnerID,
		t.IsShared,
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLite) GetTask(ctx context.Context, id string) (*task.Task, error) {
	query := `
		SELECT id, title, due_date, end_date, start_time, end_time,
		       energy, location, display_order, owner_id, is_shared, created_at
		FROM tasks
		WHERE id = ?
	`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, task.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// ListTasks returns every task, inbox first, then by due date, start time
// and display order.
func (s *SQLite) ListTasks(ctx context.Context) ([]*task.Task, error) {
	query := `
		SELECT id, title, due_date, end_date, start_time, end_time,
		       energy, location, display_order, owner_id, is_shared, created_at
		FROM tasks
		ORDER BY due_date IS NOT NULL, due_date, start_time, display_order, created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies a partial field update. Unspecified fields are left
// untouched; clear flags and empty time pointers write NULL.
func (s *SQLite) UpdateTask(ctx context.Context, id string, fields task.Fields) error {
	if fields.IsZero() {
		return nil
	}

	var (
		set  []string
		args []any
	)

	if fields.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *fields.Title)
	}
	switch {
	case fields.ClearDueDate:
		set = append(set, "due_date = NULL")
	case fields.DueDate != nil:
		set = append(set, "due_date = ?")
		args = append(args, fields.DueDate.Format(dateFormat))
	}
	switch {
	case fields.ClearEndDate:
		set = append(set, "end_date = NULL")
	case fields.EndDate != nil:
		set = append(set, "end_date = ?")
		args = append(args, fields.EndDate.Format(dateFormat))
	}
	if fields.StartTime != nil {
		set = append(set, "start_time = ?")
		args = append(args, nullString(*fields.StartTime))
	}
	if fields.EndTime != nil {
		set = append(set, "end_time = ?")
		args = append(args, nullString(*fields.EndTime))
	}
	if fields.Energy != nil {
		set = append(set, "energy = ?")
		args = append(args, nullString(string(*fields.Energy)))
	}
	if fields.Location != nil {
		set = append(set, "location = ?")
		args = append(args, string(*fields.Location))
	}
	if fields.DisplayOrder != nil {
		set = append(set, "display_order = ?")
		args = append(args, *fields.DisplayOrder)
	}
	if fields.IsShared != nil {
		set = append(set, "is_shared = ?")
		args = append(args, *fields.IsShared)
	}

	query := "UPDATE tasks SET " + strings.Join(set, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// DeleteTask removes a task by ID.
func (s *SQLite) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner abstracts over *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t         task.Task
		dueDate   sql.NullString
		endDate   sql.NullString
		startTime sql.NullString
		endTime   sql.NullString
		energy    sql.NullString
		location  string
		createdAt string
	)

	err := row.Scan(
		&t.ID,
		&t.Title,
		&dueDate,
		&endDate,
		&startTime,
		&endTime,
		&energy,
		&location,
		&t.DisplayOrder,
		&t.OwnerID,
		&t.IsShared,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		d, err := time.Parse(dateFormat, dueDate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing due date: %w", err)
		}
		t.DueDate = &d
	}
	if endDate.Valid {
		d, err := time.Parse(dateFormat, endDate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing end date: %w", err)
		}
		t.EndDate = &d
	}
	t.StartTime = startTime.String
	t.EndTime = endTime.String
	t.Energy = task.Energy(energy.String)
	t.Location = task.Location(location)

	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		// created_at may come from the column default instead of RFC3339
		t.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
	}

	return &t, nil
}

func nullDate(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(dateFormat)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
