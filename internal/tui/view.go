package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/drag"
	"github.com/javiermolinar/tablero/internal/reorder"
	"github.com/javiermolinar/tablero/internal/task"
)

// View renders the board.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if p := m.engine.Pending(); p != nil {
		return m.viewConfirmModal(p)
	}

	var b strings.Builder
	b.WriteString(m.viewTitle())
	b.WriteString("\n")

	bottom := m.layout.nightBottomRow()
	for y := headerRow; y <= bottom; y++ {
		b.WriteString(m.leftCell(y))
		b.WriteString(m.gutterCell(y))
		for day := 0; day < 7; day++ {
			b.WriteString(m.dayCell(day, y))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.viewMemoryBin())
	b.WriteString(m.viewStatus())
	return b.String()
}

func (m Model) viewTitle() string {
	title := "tablero · week of " + m.weekStart.Format("Jan 2 2006")
	if m.loading {
		title += " (loading)"
	}
	return m.styles.TitleStyle.Render(fit(title, m.width))
}

func (m Model) leftCell(y int) string {
	switch {
	case y == headerRow:
		return m.styles.InboxHeaderStyle.Render(fit(fmt.Sprintf("Inbox (%d)", len(m.layout.inboxTasks)), inboxWidth))
	case y > headerRow && y-headerRow-1 < len(m.layout.inboxTasks):
		t := m.layout.inboxTasks[y-headerRow-1]
		style := m.styles.InboxCardStyle
		if m.isDraggingTask(t) {
			style = m.styles.TaskDraggingStyle
		}
		return style.Render(fit(" "+t.Title, inboxWidth))
	default:
		return strings.Repeat(" ", inboxWidth)
	}
}

func (m Model) gutterCell(y int) string {
	var label string
	switch {
	case y == nightTopRow || y == m.layout.nightBottomRow():
		label = "night"
	case y >= firstHourRow && y < firstHourRow+m.layout.hourRows():
		label = fmt.Sprintf("%02d:00", m.hourStart+(y-firstHourRow))
	case y == allDayRow:
		label = "days"
	}
	return m.styles.TimeColumnStyle.Render(fit(label, gutterWidth))
}

func (m Model) dayCell(day, y int) string {
	date := m.weekStart.AddDate(0, 0, day)
	w := m.layout.dayWidth

	switch {
	case y == headerRow:
		style := m.styles.DayHeaderStyle
		if dateutil.SameDay(date, m.nowFunc()) {
			style = m.styles.DayHeaderTodayStyle
		}
		return style.Render(fit(date.Format("Mon 02"), w))

	case y == allDayRow:
		return m.multiDayCell(day, w)

	case y == nightTopRow:
		return m.nightCell(m.layout.nightBefore, day, w)

	case y == m.layout.nightBottomRow():
		return m.nightCell(m.layout.nightAfter, day, w)

	default:
		return m.hourCell(day, y, w)
	}
}

func (m Model) multiDayCell(day, w int) string {
	date := m.weekStart.AddDate(0, 0, day)
	for _, t := range m.layout.multiDay {
		if t.DueDate == nil || t.EndDate == nil {
			continue
		}
		if date.Before(*t.DueDate) || date.After(*t.EndDate) {
			continue
		}
		label := " "
		if dateutil.SameDay(date, *t.DueDate) {
			label = "◂ " + t.Title
		} else if dateutil.SameDay(date, *t.EndDate) {
			label = strings.Repeat(" ", max(0, w-2)) + "▸"
		}
		style := m.styles.MultiDayBarStyle
		if m.isDraggingTask(t) {
			style = m.styles.TaskDraggingStyle
		}
		return style.Render(fit(label, w))
	}
	return strings.Repeat(" ", w)
}

func (m Model) nightCell(tasks []*task.Task, day, w int) string {
	// Night cards lay out left to right regardless of weekday.
	if day < len(tasks) {
		t := tasks[day]
		style := m.styles.NightCardStyle
		if m.isDraggingTask(t) {
			style = m.styles.TaskDraggingStyle
		}
		return style.Render(fit(" "+t.StartTime[:5]+" "+t.Title, w))
	}
	return m.styles.NightStripStyle.Render(strings.Repeat("·", w))
}

func (m Model) hourCell(day, y, w int) string {
	hour := m.hourStart + (y - firstHourRow)

	covering := coveringTasks(m.layout.dayTasks[day], hour)
	if len(covering) == 0 {
		if m.isHoveredSlot(day, hour) {
			return m.styles.HoverSlotStyle.Render(strings.Repeat(" ", w))
		}
		return m.styles.EmptyCellStyle.Render(fit(" ·", w))
	}

	if len(covering) == 1 {
		return m.taskFragment(covering[0], hour, w)
	}

	// Overlapping tasks share the cell in equal columns.
	widths := reorder.NewWidths(len(covering))
	var b strings.Builder
	used := 0
	for i, t := range covering {
		cw := int(math.Round(widths.Values()[i] / 100 * float64(w)))
		if i == len(covering)-1 {
			cw = w - used
		}
		if cw <= 0 {
			continue
		}
		b.WriteString(m.taskFragment(t, hour, cw))
		used += cw
	}
	return b.String()
}

func (m Model) taskFragment(t *task.Task, hour, w int) string {
	style := m.styles.TaskCardStyle
	if m.isDraggingTask(t) {
		style = m.styles.TaskDraggingStyle
	}

	start, _ := task.ParseTimeToHours(t.StartTime)
	if int(math.Floor(start)) == hour {
		return style.Render(fit(" "+t.Title, w))
	}
	return style.Render(fit(" ", w))
}

func (m Model) viewMemoryBin() string {
	var b strings.Builder
	b.WriteString(m.styles.MemoryBinStyle.Render(fit(fmt.Sprintf("Memory (%d)", len(m.layout.memoryTasks)), m.width)))
	b.WriteString("\n")
	shown := 0
	for _, t := range m.layout.memoryTasks {
		if shown >= memoryHeight-1 {
			break
		}
		b.WriteString(m.styles.MemoryCardStyle.Render(fit(" "+t.Title, inboxWidth)))
		b.WriteString("\n")
		shown++
	}
	return b.String()
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return m.styles.ErrorStyle.Render(fit("error: "+m.err.Error(), m.width))
	}

	session := m.engine.Session()
	if t := session.ActiveTask(); t != nil {
		msg := "dragging: " + t.Title
		if zone := session.ReorderHover(); zone != nil {
			msg = fmt.Sprintf("reorder: %s → column %d", t.Title, zone.ColumnIndex+1)
		}
		if d := session.ProvisionalDate(); d != nil {
			msg = fmt.Sprintf("resize: %s → %s", t.Title, d.Format("Jan 2"))
		}
		return m.styles.ReorderHintStyle.Render(fit(msg, m.width))
	}

	if m.statusMsg != "" {
		return m.styles.StatusStyle.Render(fit(m.statusMsg, m.width))
	}
	return m.styles.StatusStyle.Render(fit("h/l week · r reload · y yank · q quit", m.width))
}

func (m Model) viewConfirmModal(p *drag.Pending) string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("Schedule task?"))
	b.WriteString("\n\n")
	b.WriteString(m.confirmTitle.View() + "\n")
	b.WriteString(m.styles.ModalAccentStyle.Render(p.Date.Format("Monday, Jan 2")))
	if p.Hour != nil {
		b.WriteString(m.styles.ModalAccentStyle.Render(fmt.Sprintf(" at %02d:00", *p.Hour)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatusStyle.Render("enter confirm · esc dismiss"))

	modal := m.styles.ModalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) isDraggingTask(t *task.Task) bool {
	active := m.engine.Session().ActiveTask()
	return active != nil && active.ID == t.ID
}

func (m Model) isHoveredSlot(day, hour int) bool {
	hovered := m.engine.Session().Hovered()
	if len(hovered) == 0 || hovered[0].Kind != drag.TargetTimeSlot {
		return false
	}
	top := hovered[0]
	date := m.weekStart.AddDate(0, 0, day)
	return top.Hour == hour && dateutil.SameDay(top.Date, date)
}

// coveringTasks returns the timed tasks whose range includes the hour,
// in display order.
func coveringTasks(tasks []*task.Task, hour int) []*task.Task {
	var out []*task.Task
	for _, t := range tasks {
		if !t.IsTimed() {
			continue
		}
		start, _ := task.ParseTimeToHours(t.StartTime)
		end := start + t.Duration()
		if float64(hour) >= math.Floor(start) && float64(hour) < end {
			out = append(out, t)
		}
	}
	return out
}

func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > w {
		if w > 1 {
			return string(r[:w-1]) + "…"
		}
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
