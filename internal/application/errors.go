package application

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every service operation traps storage failures at its
// boundary; anything not in this list surfaces to handlers as an internal
// error and is never shown to the client in detail.
var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound    = errors.New("user not found")
	ErrTopicNotFound   = errors.New("topic not found")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrDuplicateSlug     = errors.New("a topic with this title already exists")
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrDuplicateEmail    = errors.New("email is already registered")

	ErrAlreadyLiked = errors.New("entry is already liked")
	ErrNotLiked     = errors.New("entry is not liked")
)

// ValidationError carries a user-facing message for malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
