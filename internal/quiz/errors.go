package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCategory is returned when a load is attempted without a valid category id.
	ErrNoCategory = errors.New("no category selected")
	// ErrEmptyResult indicates the provider had no question for the category.
	ErrEmptyResult = errors.New("no question found")
	// ErrNoSelection indicates a submit without a chosen answer.
	ErrNoSelection = errors.New("no answer selected")
	// ErrUnknownAnswer indicates a selection that matches no answer option.
	ErrUnknownAnswer = errors.New("answer is not one of the options")
	// ErrLocked indicates input arrived while the session was not accepting it.
	ErrLocked = errors.New("session is not accepting answers")
)

// FetchError wraps a transport, status, or parse failure from a remote service.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: fetch failed", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
