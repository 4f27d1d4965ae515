// Package tui is the read-only bubbletea dashboard for `lentoflow today`
// run interactively: a single-screen rendering of the day's recommended
// and other tasks plus overall health, with up/down to move a cursor and
// 'q'/ctrl-c to quit. It loads its data once at startup — the today view
// never changes mid-session — so there is no data-loading message, unlike
// the teacher's multi-view dashboard shell.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/lentoflow/internal/algorithm"
	"github.com/alexanderramin/lentoflow/internal/cli/formatter"
	"github.com/alexanderramin/lentoflow/internal/contract"
)

type keyMap struct {
	Up, Down, Quit key.Binding
}

var keys = keyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k")),
	Down: key.NewBinding(key.WithKeys("down", "j")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
}

type model struct {
	view   *contract.TodayView
	rows   []contract.TaskView
	cursor int
}

func newModel(view *contract.TodayView) model {
	rows := make([]contract.TaskView, 0, len(view.RecommendedTasks)+len(view.OtherTasks))
	rows = append(rows, view.RecommendedTasks...)
	rows = append(rows, view.OtherTasks...)
	return model{view: view, rows: rows}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", formatter.Header(m.view.Date.Format("Monday, Jan 2")))

	healthStyle := formatter.HealthColor(m.view.OverallHealth.Score)
	fmt.Fprintf(&b, "%s  %s  %s\n", m.view.OverallHealth.Icon,
		healthStyle.Render(fmt.Sprintf("%.0f", m.view.OverallHealth.Score)),
		formatter.Dim(m.view.OverallHealth.Message))
	fmt.Fprintf(&b, "Energy %d/%d\n\n", m.view.EnergySpent, m.view.EnergyBudget)

	b.WriteString(formatter.Bold("Recommended") + "\n")
	m.writeSection(&b, m.view.RecommendedTasks, 0)

	if len(m.view.OtherTasks) > 0 {
		b.WriteString("\n" + formatter.Bold("Other") + "\n")
		m.writeSection(&b, m.view.OtherTasks, len(m.view.RecommendedTasks))
	}

	if m.view.DailyScore != nil {
		fmt.Fprintf(&b, "\n%s  %.1f pts  %s\n", m.view.DailyScore.Grade, m.view.DailyScore.TotalScore, m.view.DailyScore.Message)
	}

	fmt.Fprintf(&b, "\n%s\n\n%s\n", m.view.MotivationalMessage, formatter.Dim("↑/↓ move · q quit"))
	return b.String()
}

func (m model) writeSection(b *strings.Builder, tasks []contract.TaskView, offset int) {
	if len(tasks) == 0 {
		b.WriteString(formatter.Dim("  (none)") + "\n")
		return
	}
	for i, t := range tasks {
		cursor := "  "
		if offset+i == m.cursor {
			cursor = lipgloss.NewStyle().Foreground(formatter.ColorFg).Render("▸ ")
		}
		mark := " "
		if t.IsCompletedToday {
			mark = "✓"
		}
		fmt.Fprintf(b, "%s[%s] %s %-24s %s  H:%d\n",
			cursor, mark, t.Icon, t.Name, formatter.UrgencyIndicator(algorithm.UrgencyLevel(t.UrgencyLevel)), t.Health)
	}
}

// RunDashboard starts the interactive bubbletea program for view and
// blocks until the user quits.
func RunDashboard(view *contract.TodayView) error {
	_, err := tea.NewProgram(newModel(view)).Run()
	return err
}
