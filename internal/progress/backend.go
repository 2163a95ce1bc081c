package progress

import "sync"

// Backend stores a single opaque progress record. Implementations hold
// exactly one record under a fixed key; Read reports ok=false when no
// record has been written yet.
type Backend interface {
	Read() (data []byte, ok bool, err error)
	Write(data []byte) error
}

// MemoryBackend is an in-process Backend for tests. ReadErr and WriteErr
// inject faults for the failure paths.
type MemoryBackend struct {
	mu       sync.Mutex
	data     []byte
	present  bool
	ReadErr  error
	WriteErr error
	Writes   int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Read() ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ReadErr != nil {
		return nil, false, b.ReadErr
	}
	if !b.present {
		return nil, false, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, true, nil
}

func (b *MemoryBackend) Write(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.WriteErr != nil {
		return b.WriteErr
	}
	b.data = make([]byte, len(data))
	copy(b.data, data)
	b.present = true
	b.Writes++
	return nil
}

// Seed places raw bytes in the backend, bypassing Write bookkeeping.
// Useful for corrupt-record tests.
func (b *MemoryBackend) Seed(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = data
	b.present = true
}
