package tui

import (
	"math"
	"time"

	"github.com/javiermolinar/tablero/internal/dateutil"
	"github.com/javiermolinar/tablero/internal/drag"
	"github.com/javiermolinar/tablero/internal/reorder"
	"github.com/javiermolinar/tablero/internal/task"
)

const (
	inboxWidth  = 22
	gutterWidth = 6
	minDayWidth = 8

	// Vertical anchors, counted from the top of the screen.
	titleRow     = 0
	headerRow    = 1
	allDayRow    = 2
	nightTopRow  = 3
	firstHourRow = 4

	memoryHeight = 4
)

// cellRect builds a collision rectangle from text-cell coordinates.
func cellRect(x, y, w, h int) drag.Rect {
	return drag.Rect{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}
}

// card is a pressable region the user can start a drag from.
type card struct {
	rect   drag.Rect
	task   *task.Task
	origin drag.Origin
}

// layout holds the computed board geometry for one frame: the drop
// targets fed to the collision resolver and the pressable card regions.
type layout struct {
	width, height int
	dayWidth      int
	gridX         int
	hourStart     int
	hourEnd       int
	weekStart     time.Time

	targets []drag.Target
	cards   []card

	inboxTasks  []*task.Task
	memoryTasks []*task.Task
	nightBefore []*task.Task
	nightAfter  []*task.Task
	dayTasks    [7][]*task.Task // timed, daytime tasks per weekday column
	multiDay    []*task.Task
}

func (l *layout) hourRows() int {
	return l.hourEnd - l.hourStart
}

func (l *layout) nightBottomRow() int {
	return firstHourRow + l.hourRows()
}

func (l *layout) memoryTop() int {
	top := l.height - memoryHeight
	if top < headerRow+1 {
		top = headerRow + 1
	}
	return top
}

func (l *layout) dayX(day int) int {
	return l.gridX + day*l.dayWidth
}

// buildLayout computes the board geometry for the given frame. Targets
// register coarse-to-fine so containment ties resolve toward the most
// specific target under the pointer.
func buildLayout(width, height int, weekStart time.Time, tasks []*task.Task, hourStart, hourEnd int, focusStart, focusEnd string) *layout {
	l := &layout{
		width:     width,
		height:    height,
		gridX:     inboxWidth + gutterWidth,
		hourStart: hourStart,
		hourEnd:   hourEnd,
		weekStart: dateutil.TruncateToDay(weekStart),
	}

	l.dayWidth = (width - l.gridX) / 7
	if l.dayWidth < minDayWidth {
		l.dayWidth = minDayWidth
	}

	l.bucketTasks(tasks, focusStart, focusEnd)
	l.buildDayTargets()
	l.buildSlotTargets()
	l.buildNightTargets()
	l.buildMemoryTarget()
	l.buildTaskCards(focusStart, focusEnd)
	l.buildReorderZones()
	l.buildSideCards()

	return l
}

// bucketTasks splits the week's tasks across the board regions.
func (l *layout) bucketTasks(tasks []*task.Task, focusStart, focusEnd string) {
	weekEnd := l.weekStart.AddDate(0, 0, 7)

	for _, t := range tasks {
		switch {
		case t == nil:
			continue
		case t.InMemory():
			l.memoryTasks = append(l.memoryTasks, t)
			continue
		case t.IsInbox():
			l.inboxTasks = append(l.inboxTasks, t)
			continue
		}

		if t.DueDate.Before(l.weekStart) || !t.DueDate.Before(weekEnd) {
			continue
		}

		if t.IsMultiDay() {
			l.multiDay = append(l.multiDay, t)
			continue
		}

		day := task.DaysBetween(l.weekStart, *t.DueDate)
		if day < 0 || day > 6 {
			continue
		}

		if t.IsTimed() && t.IsNight(focusStart, focusEnd) {
			start, _ := task.ParseTimeToHours(t.StartTime)
			if start < float64(l.hourStart) {
				l.nightBefore = append(l.nightBefore, t)
			} else {
				l.nightAfter = append(l.nightAfter, t)
			}
			continue
		}

		l.dayTasks[day] = append(l.dayTasks[day], t)
	}
}

func (l *layout) buildDayTargets() {
	for day := 0; day < 7; day++ {
		date := l.weekStart.AddDate(0, 0, day)
		l.targets = append(l.targets, drag.Target{
			ID:   "day:" + date.Format("2006-01-02"),
			Kind: drag.TargetDay,
			Date: date,
			// Header and the all-day bar row both count as the day.
			Rect: cellRect(l.dayX(day), headerRow, l.dayWidth, 2),
		})
	}
}

func (l *layout) buildSlotTargets() {
	for day := 0; day < 7; day++ {
		date := l.weekStart.AddDate(0, 0, day)
		for h := l.hourStart; h < l.hourEnd; h++ {
			y := firstHourRow + (h - l.hourStart)
			l.targets = append(l.targets, drag.Target{
				ID:   "slot:" + date.Format("2006-01-02"),
				Kind: drag.TargetTimeSlot,
				Date: date,
				Hour: h,
				Rect: cellRect(l.dayX(day), y, l.dayWidth, 1),
			})
		}
	}
}

func (l *layout) buildNightTargets() {
	gridW := 7 * l.dayWidth
	l.targets = append(l.targets,
		drag.Target{
			ID:    "night:before",
			Kind:  drag.TargetNightSection,
			Night: drag.NightBefore,
			Rect:  cellRect(l.gridX, nightTopRow, gridW, 1),
		},
		drag.Target{
			ID:    "night:after",
			Kind:  drag.TargetNightSection,
			Night: drag.NightAfter,
			Rect:  cellRect(l.gridX, l.nightBottomRow(), gridW, 1),
		},
	)
}

func (l *layout) buildMemoryTarget() {
	l.targets = append(l.targets, drag.Target{
		ID:   "memory",
		Kind: drag.TargetMemory,
		Rect: cellRect(0, l.memoryTop(), inboxWidth, memoryHeight),
	})
}

// buildTaskCards registers the scheduled task cards, both as drop targets
// (dropping one task onto another adopts its position) and as pressable
// drag sources.
func (l *layout) buildTaskCards(focusStart, focusEnd string) {
	for day := 0; day < 7; day++ {
		for _, t := range l.dayTasks[day] {
			if !t.IsTimed() {
				continue
			}
			start, _ := task.ParseTimeToHours(t.StartTime)
			h := int(math.Floor(start))
			if h < l.hourStart || h >= l.hourEnd {
				continue
			}
			// Cards span their duration, at one row per hour.
			rows := max(1, int(math.Round(t.Duration())))
			rect := cellRect(l.dayX(day), firstHourRow+(h-l.hourStart), l.dayWidth, rows)
			l.targets = append(l.targets, drag.Target{
				ID:   "task:" + t.ID,
				Kind: drag.TargetTask,
				Task: t,
				Rect: rect,
			})
			l.cards = append(l.cards, card{rect: rect, task: t, origin: drag.OriginCalendar})
		}
	}

	l.buildNightCards(l.nightBefore, nightTopRow)
	l.buildNightCards(l.nightAfter, l.nightBottomRow())
	l.buildMultiDayCards()
}

func (l *layout) buildNightCards(tasks []*task.Task, y int) {
	x := l.gridX
	for _, t := range tasks {
		w := min(l.dayWidth, l.gridX+7*l.dayWidth-x)
		if w <= 0 {
			break
		}
		l.cards = append(l.cards, card{
			rect:   cellRect(x, y, w, 1),
			task:   t,
			origin: drag.OriginNight,
		})
		x += w
	}
}

// buildMultiDayCards lays multi-day tasks as bars across the all-day row.
// The first and last cell of each bar are resize handles.
func (l *layout) buildMultiDayCards() {
	for _, t := range l.multiDay {
		startDay := task.DaysBetween(l.weekStart, *t.DueDate)
		endDay := startDay + t.SpanDays() - 1
		startDay = clampDay(startDay)
		endDay = clampDay(endDay)

		barX := l.dayX(startDay)
		barW := (endDay - startDay + 1) * l.dayWidth

		// The bar body goes first so the handles on top of it win the
		// reverse hit-test scan.
		handle := min(2, l.dayWidth/2)
		l.cards = append(l.cards,
			card{
				rect:   cellRect(barX, allDayRow, barW, 1),
				task:   t,
				origin: drag.OriginCalendar,
			},
			card{
				rect:   cellRect(barX, allDayRow, handle, 1),
				task:   t,
				origin: drag.OriginResizeStart,
			},
			card{
				rect:   cellRect(barX+barW-handle, allDayRow, handle, 1),
				task:   t,
				origin: drag.OriginResizeEnd,
			},
		)
	}
}

// buildReorderZones adds one zone per overlap group of two or more tasks.
// Zones register last so they win containment ties over the cards below.
func (l *layout) buildReorderZones() {
	for day := 0; day < 7; day++ {
		for _, group := range reorder.GroupOverlapping(l.dayTasks[day]) {
			if len(group) < 2 {
				continue
			}
			top, bottom := groupRowSpan(group, l.hourStart, l.hourEnd)
			zone := &drag.ReorderZone{
				GroupTasks:  group,
				GroupTop:    float64(firstHourRow + top),
				GroupHeight: float64(bottom - top + 1),
			}
			l.targets = append(l.targets, drag.Target{
				ID:   "zone:" + group[0].ID,
				Kind: drag.TargetReorderZone,
				Zone: zone,
				Rect: cellRect(l.dayX(day), firstHourRow+top, l.dayWidth, bottom-top+1),
			})
		}
	}
}

func (l *layout) buildSideCards() {
	y := headerRow + 1
	for _, t := range l.inboxTasks {
		if y >= l.memoryTop() {
			break
		}
		l.cards = append(l.cards, card{
			rect:   cellRect(0, y, inboxWidth, 1),
			task:   t,
			origin: drag.OriginInbox,
		})
		y++
	}

	// Dragging a parked task out of the memory bin behaves exactly like
	// dragging an inbox task: it has no schedule to preserve.
	y = l.memoryTop() + 1
	for _, t := range l.memoryTasks {
		if y >= l.height {
			break
		}
		l.cards = append(l.cards, card{
			rect:   cellRect(0, y, inboxWidth, 1),
			task:   t,
			origin: drag.OriginInbox,
		})
		y++
	}
}

// cardAt returns the topmost pressable card under the point. Later-built
// cards win on overlap, so resize handles beat the bar body beneath them.
func (l *layout) cardAt(p drag.Point) (card, bool) {
	for i := len(l.cards) - 1; i >= 0; i-- {
		if l.cards[i].rect.Contains(p) {
			return l.cards[i], true
		}
	}
	return card{}, false
}

// zoneColumn derives the drop column from the pointer's x offset inside
// the zone's day cell.
func (l *layout) zoneColumn(zone *drag.ReorderZone, p drag.Point) int {
	n := len(zone.GroupTasks)
	if n == 0 || l.dayWidth == 0 {
		return 0
	}
	rel := (int(p.X) - l.gridX) % l.dayWidth
	if rel < 0 {
		rel = 0
	}
	col := rel * n / l.dayWidth
	if col > n {
		col = n
	}
	return col
}

func groupRowSpan(group []*task.Task, hourStart, hourEnd int) (top, bottom int) {
	top, bottom = hourEnd, 0
	for _, t := range group {
		start, _ := task.ParseTimeToHours(t.StartTime)
		s := int(math.Floor(start))
		e := int(math.Ceil(start + t.Duration()))
		if s < top {
			top = s
		}
		if e-1 > bottom {
			bottom = e - 1
		}
	}
	top = clampHour(top, hourStart, hourEnd) - hourStart
	bottom = clampHour(bottom, hourStart, hourEnd) - hourStart
	return top, bottom
}

func clampDay(d int) int {
	if d < 0 {
		return 0
	}
	if d > 6 {
		return 6
	}
	return d
}

func clampHour(h, start, end int) int {
	if h < start {
		return start
	}
	if h >= end {
		return end - 1
	}
	return h
}
