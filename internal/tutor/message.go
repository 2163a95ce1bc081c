package tutor

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the sender of a chat message.
type Role string

const (
	RoleUser   Role = "user"
	RoleModel  Role = "model"
	RoleSystem Role = "system"
)

// Source is a web citation attached to a model reply.
type Source struct {
	Title string
	URI   string
}

// Message is one entry in the chat transcript. Transcripts live only in
// session memory; nothing here is persisted.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Sources   []Source
	Timestamp time.Time
}

// NewUserMessage builds a user message with a fresh ID and timestamp.
func NewUserMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

func newModelMessage(text string, sources []Source) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleModel,
		Text:      text,
		Sources:   sources,
		Timestamp: time.Now(),
	}
}

// dedupeSources drops sources whose URI was already seen, preserving
// order. First occurrence wins.
func dedupeSources(in []Source) []Source {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]Source, 0, len(in))
	for _, s := range in {
		if s.URI == "" || seen[s.URI] {
			continue
		}
		seen[s.URI] = true
		out = append(out, s)
	}
	return out
}
