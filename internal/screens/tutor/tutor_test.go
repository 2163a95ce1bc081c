package tutor

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"coursedeck/internal/tutor"
)

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testScreen(replies ...tutor.MockReply) (*TutorScreen, *tutor.MockProvider) {
	mock := tutor.NewMockProvider(replies...)
	return New(tutor.NewBridge(mock, nil)), mock
}

func TestSubmitAppendsUserMessageAndDisablesInput(t *testing.T) {
	s, _ := testScreen(tutor.MockReply{Text: "An answer."})
	s.input.Model.SetValue("what is a board?")

	scr, cmd := s.Update(enterKey())
	ss := scr.(*TutorScreen)

	if len(ss.transcript) != 1 || ss.transcript[0].Role != tutor.RoleUser {
		t.Fatalf("transcript = %v, want one user message", ss.transcript)
	}
	if !ss.waiting {
		t.Error("expected waiting after submit")
	}
	if !ss.input.Disabled() {
		t.Error("expected input disabled after submit")
	}
	if ss.input.Value() != "" {
		t.Error("expected input cleared after submit")
	}
	if cmd == nil {
		t.Fatal("expected a command after submit")
	}
}

func TestReplyReenablesInput(t *testing.T) {
	s, mock := testScreen(tutor.MockReply{
		Text:    "Boards hold items.",
		Sources: []tutor.Source{{Title: "Docs", URI: "https://developer.monday.com"}},
	})
	s.input.Model.SetValue("what is a board?")

	scr, cmd := s.Update(enterKey())
	scr, _ = scr.Update(cmd())
	ss := scr.(*TutorScreen)

	if len(ss.transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(ss.transcript))
	}
	reply := ss.transcript[1]
	if reply.Role != tutor.RoleModel || reply.Text != "Boards hold items." {
		t.Errorf("unexpected reply message: %+v", reply)
	}
	if len(reply.Sources) != 1 {
		t.Errorf("sources = %d, want 1", len(reply.Sources))
	}
	if ss.waiting || ss.input.Disabled() {
		t.Error("expected input re-enabled after reply")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestEmptyInputIsIgnored(t *testing.T) {
	s, mock := testScreen()
	s.input.Model.SetValue("   ")

	scr, cmd := s.Update(enterKey())
	ss := scr.(*TutorScreen)

	if cmd != nil {
		t.Error("expected no command for blank input")
	}
	if len(ss.transcript) != 0 {
		t.Error("expected empty transcript for blank input")
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called for blank input")
	}
}

func TestSubmitIgnoredWhileWaiting(t *testing.T) {
	s, _ := testScreen(tutor.MockReply{Text: "first"})
	s.input.Model.SetValue("first question")

	scr, _ := s.Update(enterKey())
	ss := scr.(*TutorScreen)

	// A second enter while the request is outstanding does nothing.
	ss.input.Model.SetValue("second question")
	scr, cmd := ss.Update(enterKey())
	ss = scr.(*TutorScreen)

	if cmd != nil {
		t.Error("expected no command while waiting")
	}
	if len(ss.transcript) != 1 {
		t.Errorf("transcript length = %d, want 1", len(ss.transcript))
	}
}

func TestViewRendersTranscriptAndSources(t *testing.T) {
	s, _ := testScreen(tutor.MockReply{
		Text:    "See the API docs.",
		Sources: []tutor.Source{{Title: "API Reference", URI: "https://developer.monday.com/api"}},
	})
	s.input.Model.SetValue("where are the docs?")

	scr, cmd := s.Update(enterKey())
	scr, _ = scr.Update(cmd())
	ss := scr.(*TutorScreen)

	view := ss.View(100, 30)
	for _, want := range []string{"where are the docs?", "See the API docs.", "API Reference"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestKeyHintsChangeWhileWaiting(t *testing.T) {
	s, _ := testScreen(tutor.MockReply{Text: "ok"})

	found := false
	for _, h := range s.KeyHints() {
		if h.Key == "Enter" {
			found = true
		}
	}
	if !found {
		t.Error("idle hints should include Enter")
	}

	s.input.Model.SetValue("q")
	scr, _ := s.Update(enterKey())
	for _, h := range scr.(*TutorScreen).KeyHints() {
		if h.Key == "Enter" {
			t.Error("waiting hints should not include Enter")
		}
	}
}
