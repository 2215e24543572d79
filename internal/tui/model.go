package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-block-calendar/internal/calendar"
	"github.com/MKhiriev/go-block-calendar/internal/controller"
	"github.com/MKhiriev/go-block-calendar/internal/utils"
	"github.com/MKhiriev/go-block-calendar/internal/view"
	"github.com/MKhiriev/go-block-calendar/models"
)

const (
	fieldDate = iota
	fieldStart
	fieldEnd
	fieldLabel
	focusTable
	focusCalendar
	focusCount
)

const (
	debugMaxLines = 8
	// initialActions is the number of actions Init starts.
	initialActions = 1
)

// Controller is the part of the block controller the terminal UI drives.
type Controller interface {
	State() controller.AppState
	Today() string
	Init(ctx context.Context) error
	SelectDate(ctx context.Context, date string, origin *models.GridCell) error
	DateFieldChanged(date string)
	LoadSelectedDate(ctx context.Context) error
	SaveBlock(ctx context.Context) error
	DeleteBlock(ctx context.Context, blockID string) error
	RunConnectionTest(ctx context.Context) error
	RefreshCalendar(ctx context.Context) calendar.SyncReport
	NavigateMonth(ctx context.Context, delta int) calendar.SyncReport
}

// MonthView is the calendar state the UI draws.
type MonthView interface {
	CurrentDate() time.Time
	GotoDate(t time.Time)
	DaysWithEvents() map[string]bool
}

type model struct {
	ctx    context.Context
	ctrl   Controller
	month  MonthView
	screen *screen

	inputs   []textinput.Model
	focus    int
	cursor   int
	busy     int
	spinner  spinner.Model
	hint     string
	footer   string
	seenDate uint64
}

func newModel(ctx context.Context, ctrl Controller, month MonthView, s *screen, footer string) model {
	placeholders := []string{"YYYY-MM-DD", "HH:MM", "HH:MM", "What are you doing?"}
	limits := []int{10, 5, 5, 120}

	inputs := make([]textinput.Model, len(placeholders))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldDate].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		ctx:     ctx,
		ctrl:    ctrl,
		month:   month,
		screen:  s,
		inputs:  inputs,
		spinner: sp,
		footer:  footer,
		busy:    initialActions,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		action(m.ctx, m.start),
	)
}

// start loads the selected day and then the displayed month. The month sync
// needs the profile id that Init resolves, so it only runs once one is known.
func (m model) start(ctx context.Context) error {
	err := m.ctrl.Init(ctx)
	if m.ctrl.State().UserID != "" {
		m.ctrl.RefreshCalendar(ctx)
	}
	return err
}

// run counts fn as in flight and schedules it.
func (m *model) run(fn func(ctx context.Context) error) tea.Cmd {
	m.busy++
	return action(m.ctx, fn)
}

// action executes fn off the UI goroutine and reports back with actionDoneMsg.
func action(ctx context.Context, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: fn(ctx)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.syncDateField()

	switch msg := msg.(type) {
	case actionDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		m.hint = humanizeError(msg.err)
		m.syncDateField()
		m.clampCursor()
		return m, nil

	case refreshedMsg:
		m.syncDateField()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInput(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.load):
		m.publishForm()
		return m, m.run(m.ctrl.LoadSelectedDate)
	case key.Matches(msg, keys.connTest):
		return m, m.run(m.ctrl.RunConnectionTest)
	case key.Matches(msg, keys.copyDebug):
		m.copyDiagnostics()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.publishForm()
		if m.focus == fieldDate {
			return m, m.run(m.ctrl.LoadSelectedDate)
		}
		if m.focus == focusCalendar {
			date := m.ctrl.State().SelectedDate
			return m, m.selectDay(date)
		}
		return m, m.run(m.ctrl.SaveBlock)
	}

	switch m.focus {
	case focusTable:
		return m.handleTableKey(msg)
	case focusCalendar:
		return m.handleCalendarKey(msg)
	}
	return m.updateInput(msg)
}

func (m model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.screen.snapshot().table.Rows
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.delete):
		if m.cursor < len(rows) && !rows[m.cursor].IsPlaceholder() {
			id := rows[m.cursor].BlockID
			return m, m.run(func(ctx context.Context) error {
				return m.ctrl.DeleteBlock(ctx, id)
			})
		}
	case key.Matches(msg, keys.prevMonth):
		return m, m.navigate(-1)
	case key.Matches(msg, keys.nextMonth):
		return m, m.navigate(1)
	}
	return m, nil
}

func (m model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := m.ctrl.State().SelectedDate
	today := m.ctrl.Today()

	switch {
	case key.Matches(msg, keys.left):
		return m, m.selectDay(shiftDate(selected, today, -1))
	case key.Matches(msg, keys.right):
		return m, m.selectDay(shiftDate(selected, today, 1))
	case key.Matches(msg, keys.up):
		return m, m.selectDay(shiftDate(selected, today, -7))
	case key.Matches(msg, keys.down):
		return m, m.selectDay(shiftDate(selected, today, 7))
	case key.Matches(msg, keys.prevMonth):
		return m, m.navigate(-1)
	case key.Matches(msg, keys.nextMonth):
		return m, m.navigate(1)
	}
	return m, nil
}

// selectDay behaves like a click on date in the month grid. When date lies in
// another month the grid follows it.
func (m *model) selectDay(date string) tea.Cmd {
	cell, ok := gridCell(date)
	if !ok {
		return nil
	}
	return m.run(func(ctx context.Context) error {
		t, _ := utils.ParseISODate(date)
		current := m.month.CurrentDate()
		if t.Year() != current.Year() || t.Month() != current.Month() {
			m.month.GotoDate(t)
			m.ctrl.RefreshCalendar(ctx)
		}
		return m.ctrl.SelectDate(ctx, date, cell)
	})
}

func (m *model) navigate(delta int) tea.Cmd {
	return m.run(func(ctx context.Context) error {
		m.ctrl.NavigateMonth(ctx, delta)
		return nil
	})
}

func (m model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus > fieldLabel {
		return m, nil
	}

	before := m.inputs[fieldDate].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.publishForm()

	if after := m.inputs[fieldDate].Value(); m.focus == fieldDate && after != before {
		m.ctrl.DateFieldChanged(after)
		m.seenDate = m.screen.snapshot().dateFieldVersion
	}
	return m, cmd
}

func (m *model) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// syncDateField copies a date the controller pushed into the date input.
func (m *model) syncDateField() {
	st := m.screen.snapshot()
	if st.dateFieldVersion == m.seenDate {
		return
	}
	m.seenDate = st.dateFieldVersion
	if m.inputs[fieldDate].Value() != st.dateField {
		m.inputs[fieldDate].SetValue(st.dateField)
		m.publishForm()
	}
}

func (m *model) publishForm() {
	m.screen.setForm(models.FormValues{
		Date:  m.inputs[fieldDate].Value(),
		Start: m.inputs[fieldStart].Value(),
		End:   m.inputs[fieldEnd].Value(),
		Label: m.inputs[fieldLabel].Value(),
	})
}

func (m *model) clampCursor() {
	n := len(m.screen.snapshot().table.Rows)
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *model) copyDiagnostics() {
	text := m.screen.snapshot().debug
	if text == "" {
		m.screen.ShowMessage("Nothing to copy.", true)
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.screen.ShowMessage("Copy failed: "+err.Error(), true)
		return
	}
	m.screen.ShowMessage("Diagnostics copied to clipboard.", false)
}

func (m model) View() string {
	st := m.screen.snapshot()

	title := st.title
	if title == "" {
		title = "Block Calendar"
	}

	form := m.renderForm()
	table := m.panel(renderTable(st.table, m.cursor, m.focus == focusTable), m.focus == focusTable)
	grid := m.panel(renderMonth(m.month.CurrentDate(), m.month.DaysWithEvents(),
		st.highlight, m.ctrl.Today(), calendarStyle), m.focus == focusCalendar)

	var status string
	switch {
	case st.message == "":
	case st.isError:
		status = errorStyle.Render(st.message)
	default:
		status = okStyle.Render(st.message)
	}
	if m.busy > 0 {
		status = m.spinner.View() + " " + status
	}
	if m.hint != "" {
		status += "\n" + helpStyle.Render(m.hint)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		form,
		lipgloss.JoinHorizontal(lipgloss.Top, table, " ", grid),
		status,
	)
	if st.debug != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, panelStyle.Render(debugStyle.Render(clipLines(st.debug, debugMaxLines))))
	}

	help := helpLine(keys.tab, keys.enter, keys.load, keys.connTest, keys.delete, keys.prevMonth, keys.nextMonth, keys.copyDebug, keys.quit)
	footer := "User ID: " + m.ctrl.State().UserID
	if m.footer != "" {
		footer += " • " + m.footer
	}
	return renderPage(title, body, help, footer)
}

func (m model) renderForm() string {
	labels := []string{"Date", "Start", "End", "Label"}
	lines := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		lines[i] = labelStyle.Render(labels[i]) + in.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m model) panel(content string, focused bool) string {
	if focused {
		return focusedPanel.Render(content)
	}
	return panelStyle.Render(content)
}

func renderTable(t view.Table, cursor int, focused bool) string {
	widths := []int{6, 6, 32, 22}
	cell := func(s string, w int) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(s)
	}

	header := make([]string, 0, len(view.Headers))
	for i, h := range view.Headers[:len(widths)] {
		header = append(header, headerStyle.Render(cell(h, widths[i])))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for i, row := range t.Rows {
		if row.IsPlaceholder() {
			lines = append(lines, helpStyle.Render(view.EmptyPlaceholder))
			continue
		}
		cols := row.Cells()
		parts := make([]string, 0, len(widths))
		for j, w := range widths {
			parts = append(parts, cell(cols[j], w))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, parts...) + helpStyle.Render("[d] Delete")
		if focused && i == cursor {
			line = cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "\n…"
}
