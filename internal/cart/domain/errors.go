package domain

import (
	"errors"
	"strings"
)

var ErrCartNotFound = errors.New("cart not found")

// UserError is a validation problem the server reported for a mutation input.
type UserError struct {
	Field   []string
	Message string
	Code    string
}

func (e UserError) Error() string {
	if len(e.Field) == 0 {
		return e.Message
	}
	return strings.Join(e.Field, ".") + ": " + e.Message
}

type UserErrors []UserError

func (e UserErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ue := range e {
		msgs = append(msgs, ue.Error())
	}
	return "cart rejected: " + strings.Join(msgs, "; ")
}
