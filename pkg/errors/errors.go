package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the remote API has no record for the queried name.
type NotFoundError struct {
	Name string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(name string) error {
	return &NotFoundError{Name: name}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no Pokémon found for %q", e.Name)
}

// UserMessage returns the string shown to the user.
func (e *NotFoundError) UserMessage() string {
	return "No Pokémon found. Try another name."
}

// UnavailableError covers transport failures and non-success responses other
// than a missing record.
type UnavailableError struct {
	Err error
}

// NewUnavailableError constructs an UnavailableError.
func NewUnavailableError(err error) error {
	return &UnavailableError{Err: err}
}

func (e *UnavailableError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("PokéAPI unavailable: %v", e.Err)
	}
	return "PokéAPI unavailable"
}

// UserMessage returns the string shown to the user.
func (e *UnavailableError) UserMessage() string {
	return "Unable to reach PokéAPI. Please try again."
}

// Unwrap exposes the underlying error.
func (e *UnavailableError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StateError captures a failure reading or writing a persisted state slice.
// These are logged and absorbed, never shown to the user.
type StateError struct {
	Key string
	Err error
}

// NewStateError constructs a StateError for the given storage key.
func NewStateError(key string, err error) error {
	return &StateError{Key: key, Err: err}
}

func (e *StateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("state error on %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("state error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *StateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsUnavailable reports whether err wraps an UnavailableError.
func IsUnavailable(err error) bool {
	var target *UnavailableError
	return errors.As(err, &target)
}

// UserMessage converts any fetch error into a displayable string.
func UserMessage(err error) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.UserMessage()
	}
	var un *UnavailableError
	if errors.As(err, &un) {
		return un.UserMessage()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
