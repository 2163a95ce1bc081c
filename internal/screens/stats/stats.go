package stats

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"coursedeck/internal/course"
	"coursedeck/internal/progress"
	"coursedeck/internal/screen"
	"coursedeck/internal/ui/components"
	"coursedeck/internal/ui/theme"
)

// StatsScreen shows per-module completion bars.
type StatsScreen struct {
	catalog course.Course
	store   *progress.Store
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(catalog course.Course, store *progress.Store) *StatsScreen {
	return &StatsScreen{catalog: catalog, store: store}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	sum := progress.Summarize(s.catalog, s.store.Load())
	barWidth := min(width-8, 64)

	out := "\n"
	for _, ms := range sum.Modules {
		pct := 0.0
		if ms.Total > 0 {
			pct = float64(ms.Completed) / float64(ms.Total)
		}
		label := fmt.Sprintf("%-40s %d/%d", truncate(ms.Module.Title, 40), ms.Completed, ms.Total)
		out += "    " + components.NewProgressBar(label, pct, true, barWidth).View() + "\n\n"
	}

	overall := fmt.Sprintf("Overall: %d of %d lessons complete (%d%%)",
		sum.Completed, sum.Total, sum.Percent())
	out += "\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(overall)

	return out
}

func (s *StatsScreen) Title() string {
	return "My Progress"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
