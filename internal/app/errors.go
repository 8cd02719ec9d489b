package app

import "errors"

// ErrQuit signals that the application should exit normally.
var ErrQuit = errors.New("quit requested")

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
