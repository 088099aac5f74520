package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalid is returned when the edited item fails validation.
	ErrInvalid = errors.New("tui: value is invalid")
)
