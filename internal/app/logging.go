package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates the application logger writing to w.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chatvim",
		Level:           level,
	})
}

// OpenLogger creates a logger appending to the file at path. The terminal
// is owned by the screen, so an empty path discards log output.
func OpenLogger(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return NewLogger(f, level), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
