package tui

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/mediaplan/internal/config"
	"github.com/janekbaraniewski/mediaplan/internal/core"
	"github.com/janekbaraniewski/mediaplan/internal/format"
	"github.com/janekbaraniewski/mediaplan/internal/report"
)

const (
	defaultWidth  = 120
	defaultHeight = 40
)

// ConfigMsg carries a reloaded settings file into the program.
type ConfigMsg config.Config

type themePersistedMsg struct {
	name string
	err  error
}

// planView holds the rendered table and chart specs. The planner's change
// listener rebuilds it, so it is shared by pointer across Model copies.
type planView struct {
	palette []string
	table   report.Table
	charts  report.ChartSet
}

func (v *planView) rebuild(records []core.ChannelRecord) {
	v.table = report.BuildTable(records)
	v.charts = report.BuildCharts(records, v.palette)
}

type Model struct {
	planner *core.Planner
	view    *planView
	rows    []formRow

	focusRow   int
	focusField fieldKind

	width    int
	height   int
	offset   int // vertical scroll offset of the body
	showHelp bool
	status   string

	cfgTheme      string // theme named by the last applied config
	chartHeight   int
	hideCharts    bool
	customPalette []string

	help help.Model

	onThemeChange func(name string) error
}

func NewModel(cfg config.Config) Model {
	SetThemeByName(cfg.Theme)

	m := Model{
		planner:       core.NewPlanner(cfg.UI.InitialRows),
		view:          &planView{},
		cfgTheme:      cfg.Theme,
		chartHeight:   cfg.UI.ChartHeight,
		hideCharts:    cfg.UI.HideCharts,
		customPalette: cfg.Palette,
		help:          help.New(),
	}
	m.view.palette = m.palette()
	m.planner.OnChange(m.view.rebuild)
	m.view.rebuild(m.planner.Records())

	m.rows = make([]formRow, m.planner.Len())
	for i := range m.rows {
		m.rows[i] = newFormRow()
	}
	m.rows[0].focus(fieldName)
	return m
}

// WithRows fills the form from rows, adding channels as needed, as if each
// field had been typed and left.
func (m Model) WithRows(rows []core.RowInput) Model {
	for i, in := range rows {
		if i >= len(m.rows) {
			m.planner.OnAddRow()
			m.rows = append(m.rows, newFormRow())
		}
		m.rows[i].set(in)
		m.planner.OnRowEdited(i, m.rows[i].value())
	}
	return m
}

// SetOnThemeChange sets a callback that persists the theme chosen with ctrl+t.
func (m *Model) SetOnThemeChange(fn func(name string) error) {
	m.onThemeChange = fn
}

func (m Model) palette() []string {
	if len(m.customPalette) >= 4 {
		return m.customPalette
	}
	return seriesPalette()
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.offset = clamp(m.offset, 0, m.maxOffset())
		return m, nil

	case ConfigMsg:
		return m.applyConfig(config.Config(msg)), nil

	case themePersistedMsg:
		if msg.err != nil {
			m.status = "theme not saved: " + msg.err.Error()
		} else {
			m.status = "theme: " + msg.name
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	in := &m.rows[m.focusRow].inputs[m.focusField]
	*in, cmd = in.Update(msg)
	return m, cmd
}

// applyConfig applies a reloaded settings file. The active theme only
// follows the file when the configured theme itself changed.
func (m Model) applyConfig(cfg config.Config) Model {
	before := ThemeName()
	if cfg.Theme != m.cfgTheme {
		m.cfgTheme = cfg.Theme
		if !SetThemeByName(cfg.Theme) {
			slog.Debug("unknown theme in config", "theme", cfg.Theme)
		}
	}

	changed := ThemeName() != before ||
		cfg.UI.ChartHeight != m.chartHeight ||
		cfg.UI.HideCharts != m.hideCharts ||
		!slices.Equal(cfg.Palette, m.customPalette)
	if !changed {
		return m
	}

	m.chartHeight = cfg.UI.ChartHeight
	m.hideCharts = cfg.UI.HideCharts
	m.customPalette = cfg.Palette
	m.refreshPalette()
	m.offset = clamp(m.offset, 0, m.maxOffset())
	m.status = "settings reloaded"
	return m
}

func (m *Model) refreshPalette() {
	m.view.palette = m.palette()
	m.view.rebuild(m.planner.Records())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, keys.AddRow):
		return m.addRow()
	case key.Matches(msg, keys.RemoveAll):
		return m.removeExtraRows()
	case key.Matches(msg, keys.Reset):
		return m.reset()
	case key.Matches(msg, keys.Theme):
		name := CycleTheme()
		m.refreshPalette()
		return m, m.persistThemeCmd(name)
	case key.Matches(msg, keys.Next):
		row, field := m.focusRow, m.focusField+1
		if field == fieldCount {
			row, field = (row+1)%len(m.rows), fieldName
		}
		return m.moveFocus(row, field)
	case key.Matches(msg, keys.Prev):
		row, field := m.focusRow, m.focusField-1
		if field < 0 {
			row, field = (row-1+len(m.rows))%len(m.rows), fieldCount-1
		}
		return m.moveFocus(row, field)
	case key.Matches(msg, keys.Up):
		return m.moveFocus(max(m.focusRow-1, 0), m.focusField)
	case key.Matches(msg, keys.Down):
		return m.moveFocus(min(m.focusRow+1, len(m.rows)-1), m.focusField)
	case key.Matches(msg, keys.ScrollUp):
		m.scrollBy(-m.pageStep())
		return m, nil
	case key.Matches(msg, keys.ScrollDn):
		m.scrollBy(m.pageStep())
		return m, nil
	}

	row := &m.rows[m.focusRow]
	in := &row.inputs[m.focusField]
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != before {
		m.planner.OnRowEdited(m.focusRow, row.value())
	}
	return m, cmd
}

// moveFocus blurs the current field (re-decorating it) and focuses the
// target field (stripping its decoration).
func (m Model) moveFocus(row int, field fieldKind) (tea.Model, tea.Cmd) {
	if row == m.focusRow && field == m.focusField {
		return m, nil
	}
	cur := &m.rows[m.focusRow]
	if cur.blur(m.focusField) {
		m.planner.OnRowEdited(m.focusRow, cur.value())
	}
	m.focusRow, m.focusField = row, field
	cmd := m.rows[row].focus(field)
	m.scrollToFocus()
	return m, cmd
}

func (m Model) addRow() (tea.Model, tea.Cmd) {
	m.planner.OnAddRow()
	m.rows = append(m.rows, newFormRow())
	m.status = "added " + core.DefaultChannelName(len(m.rows)-1)
	return m.moveFocus(len(m.rows)-1, fieldName)
}

func (m Model) removeExtraRows() (tea.Model, tea.Cmd) {
	m.rows[m.focusRow].inputs[m.focusField].Blur()
	m.planner.OnRemoveExtraRows()
	m.rows = m.rows[:1]
	m.rows[0].clear()
	m.focusRow, m.focusField = 0, fieldName
	m.status = "removed added channels"
	cmd := m.rows[0].focus(fieldName)
	m.scrollToFocus()
	return m, cmd
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.planner.OnReset()
	for i := range m.rows {
		m.rows[i].clear()
	}
	m.status = "channels reset"
	return m, nil
}

func (m Model) persistThemeCmd(name string) tea.Cmd {
	fn := m.onThemeChange
	if fn == nil {
		return nil
	}
	return func() tea.Msg {
		err := fn(name)
		if err != nil {
			slog.Debug("theme persist failed", "error", err)
		}
		return themePersistedMsg{name: name, err: err}
	}
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m Model) pageStep() int {
	_, h := m.size()
	return max(h/2, 1)
}

// bodyHeight is the number of lines left for the scrolled body.
func (m Model) bodyHeight() int {
	_, h := m.size()
	header := m.renderHeader()
	footer := m.help.ShortHelpView(keys.ShortHelp())
	return max(h-lipgloss.Height(header)-lipgloss.Height(footer), 1)
}

func (m Model) maxOffset() int {
	w, _ := m.size()
	return max(lipgloss.Height(m.renderBody(w))-m.bodyHeight(), 0)
}

func (m *Model) scrollBy(delta int) {
	m.offset = clamp(m.offset+delta, 0, m.maxOffset())
}

// scrollToFocus moves the offset the least amount that shows the focused
// form row.
func (m *Model) scrollToFocus() {
	top := lipgloss.Height(strings.Join(formPreamble(), "\n"))
	for i := 0; i < m.focusRow; i++ {
		top += lipgloss.Height(m.rows[i].view(i, m.focusField, false))
	}
	bottom := top + lipgloss.Height(m.rows[m.focusRow].view(m.focusRow, m.focusField, true))

	bodyH := m.bodyHeight()
	switch {
	case top < m.offset:
		m.offset = top
	case bottom > m.offset+bodyH:
		m.offset = bottom - bodyH
	}
	m.offset = clamp(m.offset, 0, m.maxOffset())
}

func (m Model) View() string {
	w, h := m.size()
	if m.showHelp {
		return m.renderHelpOverlay(w, h)
	}

	header := m.renderHeader()
	footer := m.help.ShortHelpView(keys.ShortHelp())
	bodyH := m.bodyHeight()

	lines := strings.Split(m.renderBody(w), "\n")
	offset := clamp(m.offset, 0, max(len(lines)-bodyH, 0))
	end := min(offset+bodyH, len(lines))
	body := strings.Join(lines[offset:end], "\n")

	return lipgloss.JoinVertical(lipgloss.Left, header, padToHeight(body, bodyH), footer)
}

func (m Model) renderHeader() string {
	total := m.view.charts.BudgetShare.Total
	parts := []string{
		headerBrandStyle.Render("◆ mediaplan"),
		dimStyle.Render(ThemeName()),
		labelStyle.Render("channels ") + valueStyle.Render(strconv.Itoa(len(m.rows))),
		labelStyle.Render("total budget ") + valueStyle.Render(format.Amount(total)),
	}
	return strings.Join(parts, "   ")
}

func (m Model) renderBody(w int) string {
	sections := formPreamble()
	for i, r := range m.rows {
		sections = append(sections, r.view(i, m.focusField, i == m.focusRow))
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render("  "+m.status))
	}
	sections = append(sections, "", sectionHeaderStyle.Render("Media Plan"), renderPlanTable(m.view.table))
	if !m.hideCharts {
		sections = append(sections, "", renderCharts(m.view.charts, w, m.chartHeight))
	}
	return strings.Join(sections, "\n")
}

func formPreamble() []string {
	return []string{sectionHeaderStyle.Render("Channels"), formHeader()}
}

func padToHeight(s string, h int) string {
	n := lipgloss.Height(s)
	if n >= h {
		return s
	}
	return s + strings.Repeat("\n", h-n)
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
