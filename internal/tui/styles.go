package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tablero/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorInbox       lipgloss.Color
	colorScheduled   lipgloss.Color
	colorNight       lipgloss.Color
	colorMemory      lipgloss.Color
	colorWarning     lipgloss.Color

	TitleStyle          lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style
	TimeColumnStyle     lipgloss.Style

	InboxHeaderStyle lipgloss.Style
	InboxCardStyle   lipgloss.Style
	MemoryBinStyle   lipgloss.Style
	MemoryCardStyle  lipgloss.Style

	TaskCardStyle     lipgloss.Style
	TaskDraggingStyle lipgloss.Style
	MultiDayBarStyle  lipgloss.Style
	NightStripStyle   lipgloss.Style
	NightCardStyle    lipgloss.Style

	HoverSlotStyle   lipgloss.Style
	ReorderHintStyle lipgloss.Style
	EmptyCellStyle   lipgloss.Style

	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalAccentStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorInbox:       theme.Color(t.Inbox),
		colorScheduled:   theme.Color(t.Scheduled),
		colorNight:       theme.Color(t.Night),
		colorMemory:      theme.Color(t.Memory),
		colorWarning:     theme.Color(t.Warning),
	}

	s.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.DayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorFg)
	s.DayHeaderTodayStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent).Underline(true)
	s.TimeColumnStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.InboxHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorInbox)
	s.InboxCardStyle = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorInbox)
	s.MemoryBinStyle = lipgloss.NewStyle().Foreground(s.colorMemory)
	s.MemoryCardStyle = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorMemory)

	s.TaskCardStyle = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorScheduled)
	s.TaskDraggingStyle = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorWarning)
	s.MultiDayBarStyle = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorAccent)
	s.NightStripStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Background(s.colorNight)
	s.NightCardStyle = lipgloss.NewStyle().Foreground(s.colorBg).Background(s.colorNight).Bold(true)

	s.HoverSlotStyle = lipgloss.NewStyle().Background(s.colorBgSelection)
	s.ReorderHintStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Bold(true)
	s.EmptyCellStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.ErrorStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Bold(true)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(1, 2)
	s.ModalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.ModalAccentStyle = lipgloss.NewStyle().Foreground(s.colorInbox)

	return s
}
