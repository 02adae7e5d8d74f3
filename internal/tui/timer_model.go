package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/karthikas/kmcward/internal/db"
	"github.com/karthikas/kmcward/internal/models"
	"github.com/karthikas/kmcward/internal/report"
	"github.com/karthikas/kmcward/internal/timeutil"
)

// TimerModel is the live KMC session view. The one-second tick only
// refreshes the displayed counter; the saved duration always comes from the
// stored start instant and the stop wall clock, so a suspended terminal
// does not corrupt the total.
type TimerModel struct {
	width  int
	height int

	session *models.Session
	stats   report.Stats

	elapsed time.Duration

	// UI state
	stopping bool // user pressed S, stop and save
	exiting  bool // user left the timer running
}

// timerTickMsg is sent every second to update the displayed counter
type timerTickMsg struct{}

// NewTimerModel creates a timer view for an open session.
func NewTimerModel(session *models.Session, stats report.Stats) TimerModel {
	return TimerModel{
		session: session,
		stats:   stats,
		elapsed: time.Since(session.StartedAt),
	}
}

// Init starts the display ticker.
func (m TimerModel) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Update handles messages.
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = time.Since(m.session.StartedAt)
		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return timerTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer.
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 90 {
		// Narrow view: timer panel only
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ",
		m.renderSessionPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderTimerPanel renders the left panel with the running clock.
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render("KMC SESSION IN PROGRESS"))

	if baby := m.session.Baby; baby != nil {
		babyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width)
		babyText := baby.Name
		if baby.BedNo != "" {
			babyText = fmt.Sprintf("%s · Bed %s", baby.Name, baby.BedNo)
		}
		components = append(components, babyStyle.Render(babyText))
	}

	clockDisplay := m.renderBigClock()
	clockContent := ""
	for _, line := range strings.Split(clockDisplay, "\n") {
		centered := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(line)
		clockContent += centered + "\n"
	}
	components = append(components, strings.TrimRight(clockContent, "\n"))

	startedInfo := fmt.Sprintf("Started at %s", m.session.StartedAt.Format("15:04:05"))
	startedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, startedStyle.Render(startedInfo))

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderBigClock renders the elapsed time as ASCII art digits.
func (m TimerModel) renderBigClock() string {
	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	timeStr := timeutil.FormatDuration(m.elapsed.Milliseconds())

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i])
				lines[i].WriteString(" ")
			}
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// renderSessionPanel renders the right panel with session context.
func (m TimerModel) renderSessionPanel(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 12).
		Padding(0, 1)
	b.WriteString(titleStyle.Render("Kangaroo Mother Care"))
	b.WriteString("\n\n")

	lineStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	parentLine := fmt.Sprintf("Parent: %s", valueStyle.Render(m.session.Parent.MotherName))
	b.WriteString(lineStyle.Render(parentLine))
	b.WriteString("\n")

	if baby := m.session.Baby; baby != nil {
		b.WriteString(lineStyle.Render(fmt.Sprintf("Baby: %s", valueStyle.Render(baby.Name))))
		b.WriteString("\n")
		b.WriteString(lineStyle.Render(fmt.Sprintf("UHID: %s", valueStyle.Render(baby.UHID))))
		b.WriteString("\n")
	} else {
		b.WriteString(lineStyle.Render(fmt.Sprintf("Baby: %s", mutedStyle.Render("not linked"))))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(width - 8)
	b.WriteString(separatorStyle.Render(strings.Repeat("─", min(width-12, 40))))
	b.WriteString("\n\n")

	todayLine := fmt.Sprintf("Today so far: %s", valueStyle.Render(timeutil.FormatDurationText(m.stats.TodayMS)))
	b.WriteString(lineStyle.Render(todayLine))
	b.WriteString("\n")

	weekLine := fmt.Sprintf("This week: %s", valueStyle.Render(timeutil.FormatDurationText(m.stats.WeekMS)))
	b.WriteString(lineStyle.Render(weekLine))

	return b.String()
}

// renderHelpBar renders the help bar at the bottom.
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s stop & save · esc/q leave running · ctrl+c force quit")
}

// RunTimerTUI runs the session timer and stops the session if asked to.
func RunTimerTUI(session *models.Session, stats report.Stats) error {
	model := NewTimerModel(session, stats)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	timerModel := finalModel.(TimerModel)
	if timerModel.stopping {
		stopped, err := db.StopSession(session.ID)
		if err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}
		fmt.Printf("Stopped KMC session after %s\n", timeutil.FormatDuration(stopped.DurationMS))
		fmt.Printf("Today's total: %s\n", timeutil.FormatDurationText(stats.TodayMS+stopped.DurationMS))
	} else if timerModel.exiting {
		fmt.Println("\nSession is still running. Use 'kmc status' to check it or 'kmc stop' to finish.")
	}

	return nil
}
