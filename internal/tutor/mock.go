package tutor

import (
	"context"
	"sync"
)

// MockReply is a canned reply for the MockProvider.
type MockReply struct {
	Text    string
	Sources []Source
	Err     error
}

// MockProvider is a deterministic Provider for testing. It returns
// canned replies in FIFO order and records all requests.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []Request
}

// NewMockProvider creates a MockProvider with the given canned replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

// Answer returns the next canned reply or ErrProviderUnavailable if the
// queue is empty.
func (m *MockProvider) Answer(_ context.Context, req Request) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.replies) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	r := m.replies[0]
	m.replies = m.replies[1:]

	if r.Err != nil {
		return nil, r.Err
	}
	return &Reply{Text: r.Text, Sources: r.Sources}, nil
}

// Name returns "mock".
func (m *MockProvider) Name() string {
	return "mock"
}

// CallCount returns the number of Answer calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
