// Package tui provides the terminal user interface for tablero.
package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tablero/internal/config"
	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/db"
	"github.com/javiermolinar/tablero/internal/drag"
	"github.com/javiermolinar/tablero/internal/task"
	"github.com/javiermolinar/tablero/internal/tui/commands"
	"github.com/javiermolinar/tablero/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	repo   task.Repository
	config *config.Config
	engine *drag.Engine

	theme  *theme.Theme
	styles *Styles

	tasks     []*task.Task
	weekStart time.Time
	layout    *layout

	hourStart int
	hourEnd   int

	width  int
	height int

	// Title input shown in the drop confirmation modal.
	confirmTitle textinput.Model

	loading   bool
	statusMsg string
	err       error

	nowFunc func() time.Time
}

// New creates a new TUI model.
func New(repo task.Repository, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("frappe")
	}

	engine := drag.NewEngine(repo, drag.Policy(cfg.Schedule.DropPolicy))

	hourStart, hourEnd := focusWindowHours(cfg)

	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256

	m := &Model{
		repo:         repo,
		config:       cfg,
		engine:       engine,
		theme:        t,
		styles:       NewStyles(t),
		weekStart:    startOfWeek(time.Now()),
		hourStart:    hourStart,
		hourEnd:      hourEnd,
		loading:      true,
		confirmTitle: ti,
		nowFunc:      time.Now,
	}
	m.layout = m.buildBoardLayout()
	return m
}

// focusWindowHours derives the grid's hour rows from the configured focus
// window, falling back to 08-22 when the config is unparsable.
func focusWindowHours(cfg *config.Config) (int, int) {
	start, okS := task.ParseTimeToHours(cfg.Schedule.FocusStart)
	end, okE := task.ParseTimeToHours(cfg.Schedule.FocusEnd)
	if !okS || !okE || start >= end {
		return 8, 22
	}
	return int(math.Floor(start)), int(math.Ceil(end))
}

func startOfWeek(t time.Time) time.Time {
	monday, _ := dateutil.WeekRange(t)
	return monday
}

func (m *Model) buildBoardLayout() *layout {
	return buildLayout(
		m.width, m.height,
		m.weekStart, m.tasks,
		m.hourStart, m.hourEnd,
		m.config.Schedule.FocusStart, m.config.Schedule.FocusEnd,
	)
}

// refreshLayout recomputes the board geometry and hands the new drop
// targets to the drag session.
func (m *Model) refreshLayout() {
	m.layout = m.buildBoardLayout()
	m.engine.Session().SetTargets(m.layout.targets)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadTasks(m.repo)
}

// Run starts the TUI.
func Run(repo task.Repository, cfg *config.Config) error {
	ownRepo := false
	if repo == nil {
		r, err := openRepo(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		repo = r
		ownRepo = true
	}
	if ownRepo {
		defer func() { _ = repo.Close() }()
	}

	model := New(repo, cfg)
	p := tea.NewProgram(*model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func openRepo(dbPath string) (task.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}
