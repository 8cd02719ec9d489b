package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Errors returned by clipboard backends.
var (
	// ErrUnavailable indicates the platform has no usable clipboard.
	ErrUnavailable = errors.New("clipboard unavailable")

	// ErrUnknownBackend indicates an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown clipboard backend")
)

// Backend names accepted by New.
const (
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Clipboard is the capability the register store writes through.
type Clipboard interface {
	// Set replaces the clipboard content.
	Set(content string) error
}

// Backends returns the accepted backend names.
func Backends() []string {
	return []string{BackendSystem, BackendOSC52, BackendMemory, BackendNone}
}

// Options configures New.
type Options struct {
	// Writer receives OSC 52 sequences. Required for BackendOSC52.
	Writer io.Writer

	// Tmux wraps OSC 52 sequences in a tmux passthrough.
	Tmux bool
}

// New creates the clipboard for a backend name.
func New(backend string, opts Options) (Clipboard, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendSystem, "":
		return NewSystem(), nil
	case BackendOSC52:
		if opts.Writer == nil {
			return nil, fmt.Errorf("%s backend: %w: no terminal writer", BackendOSC52, ErrUnavailable)
		}
		return NewOSC52(opts.Writer, opts.Tmux), nil
	case BackendMemory:
		return NewMemory(), nil
	case BackendNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Nop discards clipboard writes.
type Nop struct{}

// Set implements Clipboard.
func (Nop) Set(string) error { return nil }

// Memory is an in-process clipboard.
type Memory struct {
	mu      sync.Mutex
	content string
	writes  int
	err     error
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Set implements Clipboard. When a failure has been injected with Fail,
// the content is left unchanged and the error returned.
func (m *Memory) Set(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.content = content
	m.writes++
	return nil
}

// Get returns the last written content.
func (m *Memory) Get() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Fail makes subsequent writes return err. Pass nil to restore writes.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
