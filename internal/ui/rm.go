package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/task"
)

func (a *App) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a task",
		Long: `Remove a task by id. An unambiguous id prefix is enough.

Example:
  tablero rm 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}
			ctx := context.Background()

			t, err := findByPrefix(ctx, repo, args[0])
			if err != nil {
				return err
			}
			if err := repo.DeleteTask(ctx, t.ID); err != nil {
				return fmt.Errorf("removing task: %w", err)
			}

			fmt.Printf("Removed %s: %s\n", shortID(t.ID), t.Title)
			return nil
		},
	}
}

// findByPrefix resolves an id prefix to exactly one task.
func findByPrefix(ctx context.Context, repo task.Repository, prefix string) (*task.Task, error) {
	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var matches []*task.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return nil, task.ErrTaskNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("id prefix %q matches %d tasks", prefix, len(matches))
	}
}
