package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tablero/internal/drag"
	"github.com/javiermolinar/tablero/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshLayout()
		return m, nil

	case commands.TasksLoadedMsg:
		m.tasks = msg.Tasks
		m.loading = false
		m.refreshLayout()
		return m, nil

	case commands.DropAppliedMsg:
		m.statusMsg = ""
		return m, commands.LoadTasks(m.repo)

	case commands.DropHeldMsg:
		if p := m.engine.Pending(); p != nil {
			m.confirmTitle.SetValue(p.Task.Title)
			m.confirmTitle.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case commands.StatusMsg:
		m.statusMsg = msg.Msg
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		// The store may have applied part of a batch; reload regardless.
		return m, commands.LoadTasks(m.repo)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.engine.Pending() != nil {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.engine.Session().State() != drag.StateIdle {
			m.engine.Session().Cancel()
		}
		m.err = nil
		return m, nil

	case "r":
		m.loading = true
		return m, commands.LoadTasks(m.repo)

	case "h", "left":
		m.weekStart = m.weekStart.AddDate(0, 0, -7)
		m.refreshLayout()
		return m, nil

	case "l", "right":
		m.weekStart = m.weekStart.AddDate(0, 0, 7)
		m.refreshLayout()
		return m, nil

	case "t":
		m.weekStart = startOfWeek(m.nowFunc())
		m.refreshLayout()
		return m, nil

	case "y":
		if err := clipboard.WriteAll(m.weekSummaryText()); err != nil {
			m.err = err
			return m, nil
		}
		m.statusMsg = "week copied to clipboard"
		return m, nil
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var override drag.ConfirmOverride
		pending := m.engine.Pending()
		if title := strings.TrimSpace(m.confirmTitle.Value()); title != "" && title != pending.Task.Title {
			override.Title = &title
		}
		m.confirmTitle.Blur()
		return m, commands.ConfirmDrop(m.engine, override)

	case "esc":
		m.engine.Dismiss()
		m.confirmTitle.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.confirmTitle, cmd = m.confirmTitle.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.engine.Pending() != nil {
		return m, nil
	}

	p := drag.Point{X: float64(msg.X), Y: float64(msg.Y)}
	session := m.engine.Session()

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if c, ok := m.layout.cardAt(p); ok {
			session.Start(c.task, c.origin)
			session.SetTargets(m.layout.targets)
			session.Move(p)
		}
		return m, nil

	case msg.Action == tea.MouseActionMotion:
		if session.State() == drag.StateIdle {
			return m, nil
		}
		session.Move(p)
		m.trackZoneColumn(p)
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		if session.State() == drag.StateIdle {
			return m, nil
		}
		m.trackZoneColumn(p)
		// End the session here, on the update loop; the command only
		// classifies and persists the finished drop.
		drop, ok := session.End(p)
		if !ok {
			return m, nil
		}
		return m, commands.ApplyDrop(m.engine, drop)
	}

	return m, nil
}

// trackZoneColumn keeps the hovered reorder zone's drop column in step
// with the pointer.
func (m *Model) trackZoneColumn(p drag.Point) {
	if zone := m.engine.Session().ReorderHover(); zone != nil {
		zone.ColumnIndex = m.layout.zoneColumn(zone, p)
	}
}

// weekSummaryText renders the visible week as plain text for yanking.
func (m Model) weekSummaryText() string {
	var b strings.Builder
	b.WriteString("Week of " + m.weekStart.Format("2006-01-02") + "\n")
	for day := 0; day < 7; day++ {
		tasks := m.layout.dayTasks[day]
		if len(tasks) == 0 {
			continue
		}
		b.WriteString(m.weekStart.AddDate(0, 0, day).Format("Mon 02") + "\n")
		for _, t := range tasks {
			if t.IsTimed() {
				b.WriteString("  " + t.StartTime[:5] + " " + t.Title + "\n")
			} else {
				b.WriteString("  " + t.Title + "\n")
			}
		}
	}
	return b.String()
}
