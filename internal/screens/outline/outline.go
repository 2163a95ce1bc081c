package outline

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"coursedeck/internal/course"
	"coursedeck/internal/progress"
	"coursedeck/internal/router"
	"coursedeck/internal/screen"
	"coursedeck/internal/screens/lesson"
	"coursedeck/internal/ui/layout"
	"coursedeck/internal/ui/theme"
)

// OutlineScreen lists every module and lesson with completion marks.
// The cursor moves over the flattened lesson sequence; enter opens the
// selected lesson.
type OutlineScreen struct {
	catalog course.Course
	store   *progress.Store
	flat    []course.Lesson
	cursor  int
}

var _ screen.Screen = (*OutlineScreen)(nil)
var _ screen.KeyHintProvider = (*OutlineScreen)(nil)

// New creates a new OutlineScreen.
func New(catalog course.Course, store *progress.Store) *OutlineScreen {
	return &OutlineScreen{
		catalog: catalog,
		store:   store,
		flat:    course.Flatten(catalog),
	}
}

func (s *OutlineScreen) Init() tea.Cmd {
	return nil
}

func (s *OutlineScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.flat)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(s.flat) {
			id := s.flat[s.cursor].ID
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: lesson.New(s.catalog, s.store, id)}
			}
		}
	}
	return s, nil
}

func (s *OutlineScreen) View(width, height int) string {
	rec := s.store.Load()

	var b strings.Builder
	idx := 0
	for _, m := range s.catalog.Modules {
		header := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(m.Title)
		b.WriteString("  " + header + "\n")

		for _, l := range m.Lessons {
			mark := theme.Pending.Render("○")
			if rec.IsCompleted(l.ID) {
				mark = theme.Done.Render("●")
			}

			line := fmt.Sprintf("%s %s", mark, l.Title)
			if l.Duration != "" {
				line += theme.Hint.Render("  " + l.Duration)
			}

			if idx == s.cursor {
				b.WriteString(theme.Selected.Render("  ▸ ") + theme.Selected.Render(line) + "\n")
			} else {
				b.WriteString("    " + theme.Body.Render(line) + "\n")
			}
			idx++
		}
		b.WriteString("\n")
	}

	return clipToHeight(b.String(), s.cursorLine(), height)
}

func (s *OutlineScreen) Title() string {
	return "Course Outline"
}

func (s *OutlineScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open lesson"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// cursorLine returns the rendered line index of the cursor, counting
// module headers and blank separators.
func (s *OutlineScreen) cursorLine() int {
	line := 0
	idx := 0
	for _, m := range s.catalog.Modules {
		line++ // module header
		for range m.Lessons {
			if idx == s.cursor {
				return line
			}
			line++
			idx++
		}
		line++ // separator
	}
	return line
}

// clipToHeight windows the content so the cursor line stays visible.
func clipToHeight(content string, cursorLine, height int) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if height <= 0 || len(lines) <= height {
		return content
	}

	top := 0
	if cursorLine >= height {
		top = cursorLine - height + 1
	}
	if top+height > len(lines) {
		top = len(lines) - height
	}
	return strings.Join(lines[top:top+height], "\n")
}
