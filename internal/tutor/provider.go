package tutor

import "context"

// Request describes one question sent to the remote model.
type Request struct {
	// Persona is the system instruction framing the model's role.
	Persona string

	// Question is the raw student question.
	Question string
}

// Reply is a provider's answer. Sources is empty for providers without
// search grounding.
type Reply struct {
	Text    string
	Sources []Source
}

// Provider is the abstraction over hosted language-model services.
type Provider interface {
	// Answer sends a single question and returns the model's reply.
	Answer(ctx context.Context, req Request) (*Reply, error)

	// Name returns the provider name for logging.
	Name() string
}
