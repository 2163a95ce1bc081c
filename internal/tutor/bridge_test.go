package tutor

import (
	"strings"
	"testing"
	"time"
)

func TestAskWithoutProviderReturnsConfigError(t *testing.T) {
	b := NewBridge(nil, nil)
	msg := b.Ask(t.Context(), "what is a board?", nil)

	if msg.Role != RoleModel {
		t.Errorf("role = %s, want model", msg.Role)
	}
	if !strings.Contains(msg.Text, "Configuration error") {
		t.Errorf("expected configuration error text, got %q", msg.Text)
	}
	if len(msg.Sources) != 0 {
		t.Errorf("expected no sources, got %v", msg.Sources)
	}
}

func TestAskSuccess(t *testing.T) {
	mock := NewMockProvider(MockReply{
		Text: "A board is a table of items.",
		Sources: []Source{
			{Title: "Boards", URI: "https://developer.monday.com/boards"},
		},
	})
	b := NewBridge(mock, nil)

	before := time.Now()
	msg := b.Ask(t.Context(), "what is a board?", nil)

	if msg.Role != RoleModel {
		t.Errorf("role = %s, want model", msg.Role)
	}
	if msg.Text != "A board is a table of items." {
		t.Errorf("unexpected text %q", msg.Text)
	}
	if len(msg.Sources) != 1 || msg.Sources[0].URI != "https://developer.monday.com/boards" {
		t.Errorf("unexpected sources %v", msg.Sources)
	}
	if msg.Timestamp.Before(before) {
		t.Error("expected a fresh timestamp")
	}
	if msg.ID == "" {
		t.Error("expected a message ID")
	}
}

func TestAskForwardsPersonaAndQuery(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: "ok"})
	b := NewBridge(mock, nil)

	b.Ask(t.Context(), "how do I authenticate?", nil)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if !strings.Contains(req.Persona, "Monday.com expert tutor") {
		t.Errorf("persona missing, got %q", req.Persona)
	}
	if !strings.Contains(req.Question, "Student Question: how do I authenticate?") {
		t.Errorf("query not embedded, got %q", req.Question)
	}
}

// Only the latest query goes to the model; the transcript is accepted
// but not forwarded.
func TestAskIgnoresHistoryContent(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: "ok"})
	b := NewBridge(mock, nil)

	history := []Message{
		NewUserMessage("earlier question about webhooks"),
	}
	b.Ask(t.Context(), "latest question", history)

	req := mock.Calls[0]
	if strings.Contains(req.Question, "webhooks") {
		t.Errorf("history leaked into the request: %q", req.Question)
	}
}

func TestAskTransportErrorReturnsFailureText(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &ErrProviderUnavailable{}})
	b := NewBridge(mock, nil)

	msg := b.Ask(t.Context(), "q", nil)
	if msg.Role != RoleModel {
		t.Errorf("role = %s, want model", msg.Role)
	}
	if msg.Text != failureText {
		t.Errorf("text = %q, want fixed failure text", msg.Text)
	}
}

func TestAskEmptyReplyFallsBack(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: ""})
	b := NewBridge(mock, nil)

	msg := b.Ask(t.Context(), "q", nil)
	if msg.Text != noAnswerText {
		t.Errorf("text = %q, want no-answer fallback", msg.Text)
	}
}

func TestAskDeduplicatesSourcesByURI(t *testing.T) {
	mock := NewMockProvider(MockReply{
		Text: "ok",
		Sources: []Source{
			{Title: "First Title", URI: "https://a.example"},
			{Title: "Other", URI: "https://b.example"},
			{Title: "Different Title, Same URI", URI: "https://a.example"},
		},
	})
	b := NewBridge(mock, nil)

	msg := b.Ask(t.Context(), "q", nil)
	if len(msg.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(msg.Sources))
	}
	if msg.Sources[0].Title != "First Title" {
		t.Errorf("expected first occurrence to win, got %q", msg.Sources[0].Title)
	}
	if msg.Sources[1].URI != "https://b.example" {
		t.Errorf("expected order preserved, got %v", msg.Sources)
	}
}

func TestDedupeSourcesSkipsEmptyURIs(t *testing.T) {
	got := dedupeSources([]Source{
		{Title: "no uri"},
		{Title: "ok", URI: "https://a.example"},
	})
	if len(got) != 1 || got[0].URI != "https://a.example" {
		t.Errorf("unexpected result %v", got)
	}
}
