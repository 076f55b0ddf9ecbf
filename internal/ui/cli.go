package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tablero/internal/config"
	"github.com/javiermolinar/tablero/internal/task"
	"github.com/javiermolinar/tablero/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   task.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily by the commands that need one.
func NewApp(repo task.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "tablero",
		Short: "A drag-and-drop task planning board for the terminal",
		Long: `Tablero is a terminal task board: an inbox of unscheduled tasks, a
weekly calendar grid, night sections for off-hours work and a memory
bin for someday ideas.

Drag tasks with the mouse to schedule, reschedule, reorder and resize
them. The keyboard drives everything else.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.repo, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.rmCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tablero %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured store on first use.
func (a *App) ensureRepo() (task.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, err := openRepo(a.config.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	return repo, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository, if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
