package rpsls

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver     = errors.New("game already over")
	ErrSessionEnded = errors.New("session already ended")
)

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }

// InvalidInputError is raised for text the player typed that cannot be used:
// an empty name, an unknown move or an answer that is neither yes nor no.
// Callers recover by prompting again.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
