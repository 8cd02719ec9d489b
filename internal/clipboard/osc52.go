package clipboard

import (
	"fmt"
	"io"
	"sync"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 writes clipboard content as an OSC 52 escape sequence. The
// terminal emulator, not the host OS, performs the copy, so this works
// over SSH.
type OSC52 struct {
	mu   sync.Mutex
	w    io.Writer
	tmux bool
}

// NewOSC52 creates an OSC 52 clipboard writing to w.
func NewOSC52(w io.Writer, tmux bool) *OSC52 {
	return &OSC52{w: w, tmux: tmux}
}

// Set implements Clipboard.
func (c *OSC52) Set(content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	seq := osc52.New(content)
	if c.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}
