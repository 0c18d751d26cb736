package config

import "fmt"

// Kind classifies configuration failures.
type Kind string

const (
	KindNotFound Kind = "not_found"
	KindInvalid  Kind = "invalid_config"
)

// Error reports a settings document that could not be used.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	base := fmt.Sprintf("config: %s", e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	return e.Err
}
