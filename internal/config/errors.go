package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidRegister indicates the default register is not a single
	// printable character.
	ErrInvalidRegister = errors.New("invalid register")

	// ErrInvalidBackend indicates an unknown clipboard backend.
	ErrInvalidBackend = errors.New("invalid clipboard backend")

	// ErrInvalidLevel indicates an unknown log level.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidKey indicates the exit key cannot be parsed.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidMode indicates an unknown or disallowed start mode.
	ErrInvalidMode = errors.New("invalid start mode")

	// ErrInvalidEnv indicates an environment override has a malformed value.
	ErrInvalidEnv = errors.New("invalid environment value")

	// ErrUnsupportedFormat indicates a config file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
