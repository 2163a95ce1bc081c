package lesson

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"coursedeck/internal/course"
	"coursedeck/internal/progress"
	"coursedeck/internal/router"
	"coursedeck/internal/screen"
	"coursedeck/internal/ui/layout"
	"coursedeck/internal/ui/theme"
)

// LessonScreen renders one lesson: metadata, content links, completion
// toggle, and prev/next navigation over the flattened course sequence.
// An unresolvable lesson ID renders a terminal not-found state instead
// of failing.
type LessonScreen struct {
	catalog course.Course
	store   *progress.Store

	lessonID string
	res      course.Resolution
	found    bool
	rec      progress.Record
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for lessonID.
func New(catalog course.Course, store *progress.Store, lessonID string) *LessonScreen {
	s := &LessonScreen{
		catalog:  catalog,
		store:    store,
		lessonID: lessonID,
	}
	s.res, s.found = course.Resolve(catalog, lessonID)
	s.rec = store.Load()
	return s
}

// Init records the lesson visit.
func (s *LessonScreen) Init() tea.Cmd {
	if s.found {
		s.rec = s.store.SetLastActive(s.lessonID)
	}
	return nil
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.found {
		return s, nil
	}

	switch kmsg.String() {
	case "c", " ":
		completed := !s.rec.IsCompleted(s.lessonID)
		s.rec = s.store.SetCompletion(s.lessonID, completed)
	case "n", "right":
		if s.res.Next != nil {
			next := s.res.Next.ID
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: New(s.catalog, s.store, next)}
			}
		}
	case "p", "left":
		if s.res.Prev != nil {
			prev := s.res.Prev.ID
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: New(s.catalog, s.store, prev)}
			}
		}
	}
	return s, nil
}

func (s *LessonScreen) View(width, height int) string {
	if !s.found {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Lesson not found.\n\nIt may have been removed from the course.\nPress Esc to go back.")
	}

	l := s.res.Lesson
	var b strings.Builder

	b.WriteString("  " + theme.Hint.Render(s.res.Module.Title) + "\n")
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(l.Title) + "\n")

	meta := string(l.Type)
	if l.Duration != "" {
		meta += " · " + l.Duration
	}
	if s.rec.IsCompleted(l.ID) {
		meta += " · " + theme.Done.Render("completed")
	}
	b.WriteString("  " + theme.Hint.Render(meta) + "\n\n")

	desc := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-4, 78)).
		Render(l.Description)
	b.WriteString(indent(desc, 2) + "\n\n")

	switch l.Type {
	case course.TypeVideo:
		b.WriteString("  " + theme.Body.Render("Watch: ") +
			theme.SourceLink.Render(videoURL(*l.Media)) + "\n")
	case course.TypeArticle, course.TypeDocumentation:
		b.WriteString("  " + theme.Body.Render("Read: ") +
			theme.SourceLink.Render(l.ContentURL) + "\n")
	}

	if len(l.Resources) > 0 {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Resources") + "\n")
		for _, r := range l.Resources {
			b.WriteString("    • " + theme.Body.Render(r.Title) + "  " +
				theme.SourceLink.Render(r.URL) + "\n")
		}
	}

	b.WriteString("\n" + s.navLine(width))
	return b.String()
}

func (s *LessonScreen) Title() string {
	if !s.found {
		return "Lesson"
	}
	return s.res.Lesson.Title
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "C", Description: "Toggle complete"},
	}
	if s.res.Prev != nil {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	if s.res.Next != nil {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

// navLine renders the prev/next footer inside the content area.
func (s *LessonScreen) navLine(width int) string {
	left := ""
	if s.res.Prev != nil {
		left = theme.Hint.Render("← ") + theme.Body.Render(s.res.Prev.Title)
	}
	right := ""
	if s.res.Next != nil {
		right = theme.Body.Render(s.res.Next.Title) + theme.Hint.Render(" →")
	}

	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "  " + left + strings.Repeat(" ", gap) + right
}

func videoURL(m course.Media) string {
	switch m.Provider {
	case course.ProviderYouTube:
		return "https://www.youtube.com/watch?v=" + m.VideoID
	case course.ProviderVimeo:
		return "https://vimeo.com/" + m.VideoID
	case course.ProviderLoom:
		return "https://www.loom.com/share/" + m.VideoID
	default:
		return m.VideoID
	}
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
