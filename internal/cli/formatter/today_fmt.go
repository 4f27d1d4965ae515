package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lentoflow/internal/algorithm"
	"github.com/alexanderramin/lentoflow/internal/contract"
)

// FormatToday renders a TodayView as the plain-text dashboard shown by
// `lentoflow today` when stdout isn't a TTY (internal/tui takes over for
// the interactive case).
func FormatToday(view *contract.TodayView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", Header(view.Date.Format("Monday, Jan 2")))

	healthStyle := HealthColor(view.OverallHealth.Score)
	fmt.Fprintf(&b, "%s  %s  %s\n",
		view.OverallHealth.Icon,
		healthStyle.Render(fmt.Sprintf("%.0f", view.OverallHealth.Score)),
		Dim(view.OverallHealth.Message))
	fmt.Fprintf(&b, "Energy: %d/%d\n\n", view.EnergySpent, view.EnergyBudget)

	if len(view.RecommendedTasks) == 0 {
		b.WriteString(Dim("No tasks recommended right now.") + "\n")
	} else {
		b.WriteString(Bold("Recommended") + "\n")
		for _, t := range view.RecommendedTasks {
			writeTaskLine(&b, t)
		}
		b.WriteString("\n")
	}

	if len(view.OtherTasks) > 0 {
		b.WriteString(Bold("Other") + "\n")
		for _, t := range view.OtherTasks {
			writeTaskLine(&b, t)
		}
		b.WriteString("\n")
	}

	if view.DailyScore != nil {
		fmt.Fprintf(&b, "%s  %s (%.1f)\n", view.DailyScore.Grade, Dim(view.DailyScore.Message), view.DailyScore.TotalScore)
	}

	fmt.Fprintf(&b, "\n%s\n", view.MotivationalMessage)
	return b.String()
}

func writeTaskLine(b *strings.Builder, t contract.TaskView) {
	level := algorithm.UrgencyLevel(t.UrgencyLevel)
	mark := " "
	if t.IsCompletedToday {
		mark = "✓"
	}
	fmt.Fprintf(b, "  [%s] %s %-24s %s  H:%d  E:%d\n",
		mark, t.Icon, t.Name, UrgencyIndicator(level), t.Health, t.EnergyCost)
}
