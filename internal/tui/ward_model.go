package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/karthikas/kmcward/internal/report"
	"github.com/karthikas/kmcward/internal/timeutil"
)

// ward sort keys, cycled with 'f'
const (
	sortByName = iota
	sortByToday
	sortByWeek
)

var sortLabels = []string{"name", "today", "week"}

// WardModel is the staff dashboard: every baby with today/week KMC totals,
// searchable and sortable, low-contact babies flagged.
type WardModel struct {
	width  int
	height int

	rows     []report.WardRow
	filtered []report.WardRow

	sortBy    int
	searching bool
	search    textinput.Model

	err error
}

// NewWardModel creates the dashboard model from preloaded rows.
func NewWardModel(rows []report.WardRow) WardModel {
	search := textinput.New()
	search.Placeholder = "baby name or UHID"
	search.CharLimit = 40

	m := WardModel{
		rows:   rows,
		search: search,
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m WardModel) Init() tea.Cmd {
	return nil
}

// wardRefreshMsg carries reloaded dashboard rows
type wardRefreshMsg struct {
	rows []report.WardRow
	err  error
}

func refreshWard() tea.Msg {
	rows, err := report.Ward(time.Now())
	return wardRefreshMsg{rows: rows, err: err}
}

// Update handles messages.
func (m WardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case wardRefreshMsg:
		if msg.err == nil {
			m.rows = msg.rows
		}
		m.err = msg.err
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter", "esc":
				m.searching = false
				m.search.Blur()
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			m.applyFilter()
			return m, nil
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink
		case "f":
			m.sortBy = (m.sortBy + 1) % len(sortLabels)
			m.applyFilter()
			return m, nil
		case "r":
			return m, refreshWard
		}
	}

	return m, nil
}

// applyFilter rebuilds the visible rows from the search query and sort key.
func (m *WardModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))

	m.filtered = m.filtered[:0]
	for _, row := range m.rows {
		if query == "" ||
			strings.Contains(strings.ToLower(row.Baby.Name), query) ||
			strings.Contains(strings.ToLower(row.Baby.UHID), query) {
			m.filtered = append(m.filtered, row)
		}
	}

	switch m.sortBy {
	case sortByToday:
		sort.SliceStable(m.filtered, func(i, j int) bool {
			return m.filtered[i].TodayMS > m.filtered[j].TodayMS
		})
	case sortByWeek:
		sort.SliceStable(m.filtered, func(i, j int) bool {
			return m.filtered[i].WeekMS > m.filtered[j].WeekMS
		})
	default:
		sort.SliceStable(m.filtered, func(i, j int) bool {
			return m.filtered[i].Baby.Name < m.filtered[j].Baby.Name
		})
	}
}

// View renders the dashboard.
func (m WardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(titleStyle.Render("WARD KMC DASHBOARD"))
	b.WriteString("\n")

	lowCount := 0
	for _, row := range m.rows {
		if row.LowKMC() {
			lowCount++
		}
	}
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(summaryStyle.Render(
		fmt.Sprintf("%d babies · %d under 1 hr today · sorted by %s", len(m.rows), lowCount, sortLabels[m.sortBy])))
	b.WriteString("\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: " + m.search.View())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render(fmt.Sprintf("refresh failed: %v", m.err)))
		b.WriteString("\n\n")
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true)
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-20s %-10s %-6s %-14s %-14s", "ID", "NAME", "UHID", "BED", "TODAY", "WEEK")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)).Render(strings.Repeat("─", 72)))
	b.WriteString("\n")

	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	lowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))

	for _, row := range m.filtered {
		name := row.Baby.Name
		if len(name) > 18 {
			name = name[:15] + "..."
		}

		line := fmt.Sprintf("%-4d %-20s %-10s %-6s %-14s %-14s",
			row.Baby.ID,
			name,
			row.Baby.UHID,
			row.Baby.BedNo,
			timeutil.FormatDurationText(row.TodayMS),
			timeutil.FormatDurationText(row.WeekMS),
		)

		if row.LowKMC() {
			b.WriteString(lowStyle.Render(line))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(summaryStyle.Render("no babies match"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("/ search · f sort · r refresh · esc/q quit"))

	return b.String()
}

// RunWardTUI runs the interactive ward dashboard.
func RunWardTUI(rows []report.WardRow) error {
	p := tea.NewProgram(NewWardModel(rows), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
