package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boardquest/internal/catalog"
	"boardquest/internal/engine"
	"boardquest/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	cols [4][]engine.Task
	col  int
	row  int

	adding bool
	input  textinput.Model

	// ticking guards the display tick loop: at most one scheduled tick,
	// and only while some timer is running.
	ticking bool

	lastLog string
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	in := textinput.New()
	in.Placeholder = "task title"
	in.CharLimit = 120
	m := boardModel{
		ctx:     ctx,
		svc:     svc,
		input:   in,
		lastLog: "Loaded.",
	}
	m.ticking = svc.AnyTimerRunning()
	m.refresh()
	return m
}

func (m boardModel) Init() tea.Cmd {
	if m.svc.AnyTimerRunning() {
		return tick()
	}
	return nil
}

func (m *boardModel) refresh() {
	all := m.svc.ListTasks(engine.Query{})
	for i := range m.cols {
		m.cols[i] = nil
	}
	for _, t := range all {
		for i, st := range engine.Columns {
			if t.Status == st {
				m.cols[i] = append(m.cols[i], t)
				break
			}
		}
	}
	m.clampSelection()
}

func (m *boardModel) clampSelection() {
	if m.col < 0 {
		m.col = 0
	}
	if m.col > len(m.cols)-1 {
		m.col = len(m.cols) - 1
	}
	if m.row > len(m.cols[m.col])-1 {
		m.row = len(m.cols[m.col]) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m boardModel) selected() *engine.Task {
	if len(m.cols[m.col]) == 0 {
		return nil
	}
	t := m.cols[m.col][m.row]
	return &t
}

// maybeTick starts the tick loop after a mutation if a timer now runs and no
// tick is scheduled. The loop stops itself once no timer is running.
func (m *boardModel) maybeTick() tea.Cmd {
	if !m.ticking && m.svc.AnyTimerRunning() {
		m.ticking = true
		return tick()
	}
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.ticking = m.svc.AnyTimerRunning()
		if m.ticking {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			if m.col > 0 {
				m.col--
				m.clampSelection()
			}
			return m, nil
		case "right", "l":
			if m.col < len(m.cols)-1 {
				m.col++
				m.clampSelection()
			}
			return m, nil
		case "up", "k":
			if m.row > 0 {
				m.row--
			}
			return m, nil
		case "down", "j":
			if m.row < len(m.cols[m.col])-1 {
				m.row++
			}
			return m, nil
		case "shift+left", "H":
			return m.moveSelected(-1)
		case "shift+right", "L":
			return m.moveSelected(+1)
		case "t":
			t := m.selected()
			if t == nil {
				m.lastLog = "No task selected."
				return m, nil
			}
			m.svc.ToggleTimer(m.ctx, t.ID)
			m.refresh()
			if cur := m.svc.Task(t.ID); cur != nil && cur.TimerRunning {
				m.lastLog = fmt.Sprintf("%s Timer started: %s", ui.IconTimer, cur.Title)
			} else if cur != nil {
				m.lastLog = fmt.Sprintf("%s Paused at %s: %s", ui.IconTimer, ui.FormatDuration(engine.Elapsed(*cur, time.Now())), cur.Title)
			}
			return m, m.maybeTick()
		case "x":
			t := m.selected()
			if t == nil {
				m.lastLog = "No task selected."
				return m, nil
			}
			m.svc.DeleteTask(m.ctx, t.ID)
			m.lastLog = fmt.Sprintf("%s Deleted: %s", ui.IconTrash, t.Title)
			m.refresh()
			return m, nil
		case "a":
			m.adding = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m boardModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "enter":
		title := m.input.Value()
		m.adding = false
		m.input.Blur()
		if !engine.IsValidTitle(title) {
			m.lastLog = "Title must not be empty."
			return m, nil
		}
		t := m.svc.CreateTask(m.ctx, engine.CreateTaskInput{
			Title:  title,
			Status: engine.Columns[m.col],
		})
		if t != nil {
			m.lastLog = fmt.Sprintf("%s Added to %s: %s", ui.IconPlus, t.Status, t.Title)
		}
		m.refresh()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m boardModel) moveSelected(delta int) (tea.Model, tea.Cmd) {
	t := m.selected()
	if t == nil {
		m.lastLog = "No task selected."
		return m, nil
	}
	target := m.col + delta
	if target < 0 || target > len(engine.Columns)-1 {
		return m, nil
	}
	ev, ok := m.svc.MoveTask(m.ctx, t.ID, engine.Columns[target])
	if !ok {
		m.lastLog = "Move failed."
		return m, nil
	}
	switch e := ev.(type) {
	case engine.TaskCompleted:
		m.lastLog = fmt.Sprintf("%s Done: %s (+%d %s)", ui.IconDone, t.Title, e.Reward, ui.IconPoints)
		if m.svc.HasUpgrade(catalog.ItemConfetti) {
			m.lastLog += " " + ui.IconConfetti
		}
	case engine.TaskReopened:
		m.lastLog = fmt.Sprintf("%s Reopened: %s (-%d %s)", ui.IconUndo, t.Title, e.Refund, ui.IconPoints)
	default:
		m.lastLog = fmt.Sprintf("Moved to %s: %s", engine.Columns[target], t.Title)
	}
	m.refresh()
	return m, m.maybeTick()
}

var columnTitles = map[engine.Status]string{
	engine.StatusBacklog: "Backlog",
	engine.StatusTodo:    "To-Do",
	engine.StatusDoing:   "Doing",
	engine.StatusDone:    "Done",
}

func (m boardModel) View() string {
	if m.width == 0 {
		return "Boardquest — loading…"
	}

	now := time.Now()
	colWidth := m.width/len(m.cols) - 4
	if colWidth < 18 {
		colWidth = 18
	}

	rendered := make([]string, 0, len(m.cols))
	for i, st := range engine.Columns {
		var b strings.Builder
		b.WriteString(ui.PanelTitle.Render(fmt.Sprintf("%s (%d)", columnTitles[st], len(m.cols[i]))))
		b.WriteString("\n")
		for j, t := range m.cols[i] {
			line := m.taskLine(t, colWidth, now)
			if i == m.col && j == m.row {
				line = ui.SelectedRow.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if len(m.cols[i]) == 0 {
			b.WriteString(ui.Muted.Render("—"))
			b.WriteString("\n")
		}
		rendered = append(rendered, ui.Panel.Width(colWidth).Render(b.String()))
	}

	header := ui.Heading(ui.IconBoard, "Boardquest") + "  " +
		ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconPoints, m.svc.Points()))
	if m.svc.PersistGranted() {
		header += "  " + ui.Muted.Render("storage pinned")
	}

	st := m.svc.Stats()
	footer := ui.Muted.Render(fmt.Sprintf("%d tasks · %d done · %d doing · %s tracked",
		st.Total, st.Done, st.InProgress, ui.FormatDuration(st.TotalElapsed)))
	help := ui.Muted.Render("←/→ column · ↑/↓ task · H/L move · t timer · a add · x delete · q quit")

	parts := []string{
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		footer,
	}
	if m.adding {
		parts = append(parts, ui.Key.Render("New task:")+" "+m.input.View())
	}
	parts = append(parts, help, m.lastLog)
	return strings.Join(parts, "\n")
}

func (m boardModel) taskLine(t engine.Task, width int, now time.Time) string {
	tier := catalog.TierByKey(t.Difficulty)
	mark := " "
	if t.TimerRunning {
		mark = "▶"
	}
	title := t.Title
	if max := width - 12; max > 3 && len(title) > max {
		title = title[:max-1] + "…"
	}
	line := fmt.Sprintf("%s%s %s p%d", mark, tier.Key, title, t.Priority)
	if d := engine.Elapsed(t, now); d > 0 {
		line += " " + ui.Muted.Render(ui.FormatDuration(d))
	}
	return line
}
