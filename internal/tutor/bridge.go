package tutor

import (
	"context"
	"fmt"
	"log/slog"
)

// Fixed user-visible texts. Failures never surface as raw errors.
const (
	configErrorText = "Configuration error: no AI provider API key is set. " +
		"Set GEMINI_API_KEY (or ANTHROPIC_API_KEY / OPENAI_API_KEY) to use the AI Tutor."
	noAnswerText = "I couldn't find an answer to that. Please try rephrasing."
	failureText  = "Sorry, I encountered an error while searching for that information."
)

// persona is the fixed system instruction sent with every question.
const persona = "You are a helpful, encouraging, and technical Monday.com expert tutor. " +
	"Provide code snippets if relevant. Always cite your sources."

// questionTemplate frames the raw query the way the tutor expects it.
const questionTemplate = "Context: You are an expert Monday.com Development Tutor. " +
	"Help the student with their question using the latest documentation found via search.\n\n" +
	"Student Question: %s"

// Bridge turns user queries into model messages. It is stateless: the
// caller owns transcript accumulation. A nil provider means no credential
// was configured; Ask then returns the configuration-error message
// without attempting a call.
type Bridge struct {
	provider Provider
	log      *slog.Logger
}

// NewBridge creates a Bridge. Both arguments may be nil.
func NewBridge(provider Provider, log *slog.Logger) *Bridge {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Bridge{provider: provider, log: log}
}

// Configured reports whether a provider is available.
func (b *Bridge) Configured() bool {
	return b.provider != nil
}

// Ask sends query to the provider and always returns a model message:
// the answer on success, a fixed text on configuration or transport
// failure. One best-effort attempt; no retry, no timeout enforcement.
//
// history is accepted so callers can hand over the full transcript, but
// only the latest query is forwarded to the model; grounding search
// works per-question, not per-conversation. See DESIGN.md.
func (b *Bridge) Ask(ctx context.Context, query string, history []Message) Message {
	_ = history

	if b.provider == nil {
		return newModelMessage(configErrorText, nil)
	}

	reply, err := b.provider.Answer(ctx, Request{
		Persona:  persona,
		Question: fmt.Sprintf(questionTemplate, query),
	})
	if err != nil {
		b.log.Error("tutor request failed", "provider", b.provider.Name(), "error", err)
		return newModelMessage(failureText, nil)
	}

	text := reply.Text
	if text == "" {
		text = noAnswerText
	}
	return newModelMessage(text, dedupeSources(reply.Sources))
}
