package graphql

import (
	"fmt"
	"strings"
)

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Error is a single entry of the top-level "errors" member.
type Error struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Locations  []Location     `json:"locations,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e Error) Error() string {
	return e.Message
}

type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Errors     Errors
}

func (e *StatusError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("graphql: unexpected status %s: %s", e.Status, e.Errors.Error())
	}
	return fmt.Sprintf("graphql: unexpected status %s", e.Status)
}

// Temporary reports whether retrying later could succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
