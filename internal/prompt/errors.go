package prompt

import "github.com/cockroachdb/errors"

var (
	// ErrNoSelection is returned when Enter is pressed while no commit type matches the query
	ErrNoSelection = errors.New("no commit type matches the filter")

	// ErrBlankSubject is returned when Enter is pressed on an empty subject
	ErrBlankSubject = errors.New("subject must not be empty")

	// ErrInvalidScope is returned when Enter is pressed on a scope containing parentheses
	ErrInvalidScope = errors.New("scope must not contain parentheses")

	// ErrUserCancelled is returned when the user aborts the prompt
	ErrUserCancelled = errors.New("cancelled by user")

	// ErrIncomplete is returned by Result before the session reached a final stage
	ErrIncomplete = errors.New("prompt is not finished")
)

// IsRecoverable reports whether err only rejects the last event and the loop should go on
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrNoSelection) || errors.Is(err, ErrBlankSubject) || errors.Is(err, ErrInvalidScope)
}
