package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by board region",
		Long: `List tasks: the inbox first, then the calendar grouped by date, then
the memory bin.

By default only upcoming and unscheduled tasks are shown; --all includes
every task in the store.`,
		Example: `  tablero list
  tablero list --all`,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.ensureRepo()
			if err != nil {
				return err
			}
			tasks, err := repo.ListTasks(context.Background())
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			if !all {
				tasks = dropPast(tasks, time.Now())
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks yet.")
				return nil
			}

			printRegion("Inbox", tasks, func(t *task.Task) bool { return t.IsInbox() })
			printCalendar(tasks)
			printRegion("Memory", tasks, func(t *task.Task) bool { return t.InMemory() })

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include past tasks")

	return cmd
}

func printRegion(name string, tasks []*task.Task, keep func(*task.Task) bool) {
	var found bool
	for _, t := range tasks {
		if !keep(t) {
			continue
		}
		if !found {
			fmt.Println(formatHeader("=== " + name + " ==="))
			found = true
		}
		fmt.Printf("  %s %s %s\n", shortID(t.ID), energySymbol(t.Energy), t.Title)
	}
	if found {
		fmt.Println()
	}
}

func printCalendar(tasks []*task.Task) {
	var currentDate string
	for _, t := range tasks {
		if !t.IsCalendar() {
			continue
		}
		date := t.DueDate.Format("2006-01-02")
		if date != currentDate {
			if currentDate != "" {
				fmt.Println()
			}
			fmt.Println(formatHeader("=== " + date + " ==="))
			currentDate = date
		}

		line := fmt.Sprintf("  %s %s %s", shortID(t.ID), energySymbol(t.Energy), t.Title)
		if t.IsTimed() && t.EndTime != "" {
			line += formatMuted(fmt.Sprintf(" %s-%s", t.StartTime[:5], t.EndTime[:5]))
		} else if t.IsTimed() {
			line += formatMuted(" " + t.StartTime[:5])
		}
		if t.IsMultiDay() {
			line += formatMuted(" → " + t.EndDate.Format("2006-01-02"))
		}
		fmt.Println(line)
	}
	if currentDate != "" {
		fmt.Println()
	}
}

// dropPast filters out calendar tasks whose last day is behind now.
// Inbox and memory tasks always stay.
func dropPast(tasks []*task.Task, now time.Time) []*task.Task {
	today := dateutil.TruncateToDay(now)
	var out []*task.Task
	for _, t := range tasks {
		if t.IsCalendar() {
			last := *t.DueDate
			if t.EndDate != nil {
				last = *t.EndDate
			}
			if last.Before(today) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func energySymbol(e task.Energy) string {
	switch e {
	case task.EnergyHigh:
		return formatHigh("▲")
	case task.EnergyLow:
		return formatLow("▽")
	default:
		return formatMuted("•")
	}
}
