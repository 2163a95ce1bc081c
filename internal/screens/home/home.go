package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"coursedeck/internal/course"
	"coursedeck/internal/progress"
	"coursedeck/internal/router"
	"coursedeck/internal/screen"
	"coursedeck/internal/screens/lesson"
	"coursedeck/internal/screens/outline"
	"coursedeck/internal/screens/stats"
	tutorscreen "coursedeck/internal/screens/tutor"
	"coursedeck/internal/tutor"
	"coursedeck/internal/ui/components"
	"coursedeck/internal/ui/theme"
)

// HomeScreen is the main entry screen: course banner, completion bar,
// and the navigation menu.
type HomeScreen struct {
	catalog course.Course
	store   *progress.Store
	menu    components.Menu
	summary progress.Summary
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(catalog course.Course, store *progress.Store, bridge *tutor.Bridge) *HomeScreen {
	rec := store.Load()
	sum := progress.Summarize(catalog, rec)

	resumeID := ""
	resumeLabel := "RESUME LESSON"
	if rec.LastActiveLessonID != nil {
		if res, ok := course.Resolve(catalog, *rec.LastActiveLessonID); ok {
			resumeID = res.Lesson.ID
			resumeLabel = "RESUME: " + res.Lesson.Title
		}
	}

	items := []components.MenuItem{
		{
			Label:    resumeLabel,
			Disabled: resumeID == "",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lesson.New(catalog, store, resumeID)}
				}
			},
		},
		{
			Label:  "COURSE OUTLINE",
			Detail: fmt.Sprintf("%d lessons", catalog.LessonCount()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: outline.New(catalog, store)}
				}
			},
		},
		{
			Label: "AI TUTOR",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: tutorscreen.New(bridge)}
				}
			},
		},
		{
			Label: "MY PROGRESS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(catalog, store)}
				}
			},
		},
		{
			Label:  "QUIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		catalog: catalog,
		store:   store,
		menu:    components.NewMenu(items),
		summary: sum,
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	// Recompute on render so returning from a lesson shows fresh counts.
	s.summary = progress.Summarize(s.catalog, s.store.Load())

	title := theme.Title.Width(width).Render(s.catalog.Title)
	subtitle := theme.Subtitle.Width(width).Render(s.catalog.Description)

	barWidth := min(width-8, 60)
	bar := components.NewProgressBar(
		"Course progress",
		percentOf(s.summary),
		true,
		barWidth,
	).View()
	bar = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar)

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.menu.View())

	return "\n" + title + "\n" + subtitle + "\n\n" + bar + "\n\n" + menu
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func percentOf(sum progress.Summary) float64 {
	if sum.Total == 0 {
		return 0
	}
	return float64(sum.Completed) / float64(sum.Total)
}
