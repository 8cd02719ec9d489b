package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System writes to the operating system clipboard.
type System struct{}

// NewSystem creates a System clipboard.
func NewSystem() System {
	return System{}
}

// Set implements Clipboard.
func (System) Set(content string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}
