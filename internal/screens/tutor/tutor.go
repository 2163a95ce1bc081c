package tutor

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"coursedeck/internal/screen"
	"coursedeck/internal/tutor"
	"coursedeck/internal/ui/components"
	"coursedeck/internal/ui/layout"
	"coursedeck/internal/ui/theme"
)

// replyMsg carries the bridge's answer back into the event loop.
type replyMsg struct {
	message tutor.Message
}

// TutorScreen is the chat interface. The transcript lives here, in
// session memory only; the bridge is stateless. Submission is disabled
// while a request is outstanding so calls never overlap.
type TutorScreen struct {
	bridge     *tutor.Bridge
	input      components.ChatInput
	transcript []tutor.Message
	waiting    bool
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates a new TutorScreen.
func New(bridge *tutor.Bridge) *TutorScreen {
	return &TutorScreen{
		bridge: bridge,
		input:  components.NewChatInput("Ask about Monday.com development…", 500),
	}
}

func (s *TutorScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.transcript = append(s.transcript, msg.message)
		s.waiting = false
		s.input.SetDisabled(false)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !s.waiting {
			query := strings.TrimSpace(s.input.Value())
			if query == "" {
				return s, nil
			}
			s.transcript = append(s.transcript, tutor.NewUserMessage(query))
			s.input.Clear()
			s.input.SetDisabled(true)
			s.waiting = true

			history := make([]tutor.Message, len(s.transcript))
			copy(history, s.transcript)
			return s, s.ask(query, history)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// ask runs the bridge call off the event loop. The bridge never returns
// an error; failures arrive as fixed-text model messages.
func (s *TutorScreen) ask(query string, history []tutor.Message) tea.Cmd {
	bridge := s.bridge
	return func() tea.Msg {
		return replyMsg{message: bridge.Ask(context.Background(), query, history)}
	}
}

func (s *TutorScreen) View(width, height int) string {
	inputView := "  " + s.input.View()
	inputHeight := lipgloss.Height(inputView) + 1

	transcriptHeight := height - inputHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := s.renderTranscript(width)
	transcript = tailLines(transcript, transcriptHeight)

	filler := transcriptHeight - lipgloss.Height(transcript)
	if transcript == "" {
		transcript = lipgloss.NewStyle().
			Width(width).
			Foreground(theme.TextDim).
			Align(lipgloss.Center).
			Render("\nAsk anything about the course material.\nAnswers cite live documentation when search grounding is available.")
		filler = transcriptHeight - lipgloss.Height(transcript)
	}
	if filler < 0 {
		filler = 0
	}

	return transcript + strings.Repeat("\n", filler+1) + inputView
}

func (s *TutorScreen) renderTranscript(width int) string {
	wrap := min(width-8, 76)
	var b strings.Builder
	for _, m := range s.transcript {
		switch m.Role {
		case tutor.RoleUser:
			b.WriteString("  " + theme.UserBubble.Render("You") + " " +
				lipgloss.NewStyle().Foreground(theme.Text).Width(wrap).Render(m.Text) + "\n\n")
		default:
			b.WriteString("  " + theme.ModelBubble.Render("Tutor") + " " +
				lipgloss.NewStyle().Foreground(theme.Text).Width(wrap).Render(m.Text) + "\n")
			for _, src := range m.Sources {
				b.WriteString("      " + theme.Hint.Render("↳ "+src.Title+" ") +
					theme.SourceLink.Render(src.URI) + "\n")
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *TutorScreen) Title() string {
	return "AI Tutor"
}

func (s *TutorScreen) KeyHints() []layout.KeyHint {
	if s.waiting {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// tailLines keeps the last n lines so the newest messages stay visible.
func tailLines(s string, n int) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
