package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		due    string
		start  string
		end    string
		energy string
		memory bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task. Without flags the task lands in the inbox; with a due
date it goes straight to the calendar.

The due date accepts absolute dates and relative forms: today, tomorrow,
monday..sunday, next-monday..next-sunday, next-week.

Example:
  tablero add "Write documentation" --due=tomorrow --start=09:00 --end=11:00 --energy=high`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := task.New(args[0], task.Energy(energy), "")
			if err != nil {
				return err
			}

			if due != "" {
				date, err := dateutil.ParseRelativeDate(due, time.Now())
				if err != nil {
					return err
				}
				t.DueDate = &date
			}
			t.StartTime = normalizeTime(start)
			t.EndTime = normalizeTime(end)
			if memory {
				t.Location = task.LocationMemory
			}
			if err := t.Validate(); err != nil {
				return err
			}

			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}
			if err := repo.CreateTask(context.Background(), t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Printf("Created %s: %s%s\n", shortID(t.ID), t.Title, placement(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or relative, default: inbox)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&energy, "energy", "medium", "Energy level: low, medium or high")
	cmd.Flags().BoolVar(&memory, "memory", false, "Park the task in the memory bin")

	return cmd
}

// normalizeTime widens HH:MM input to the stored HH:MM:SS form.
func normalizeTime(s string) string {
	if len(s) == 5 {
		return s + ":00"
	}
	return s
}

func placement(t *task.Task) string {
	switch {
	case t.InMemory():
		return " (memory)"
	case t.DueDate == nil:
		return " (inbox)"
	case t.IsTimed() && t.EndTime != "":
		return fmt.Sprintf(" on %s %s-%s", t.DueDate.Format("2006-01-02"), t.StartTime[:5], t.EndTime[:5])
	case t.IsTimed():
		return fmt.Sprintf(" on %s at %s", t.DueDate.Format("2006-01-02"), t.StartTime[:5])
	default:
		return " on " + t.DueDate.Format("2006-01-02")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
