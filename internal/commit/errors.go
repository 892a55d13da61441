package commit

import "github.com/cockroachdb/errors"

var (
	// ErrMissingType is returned when a draft without a type is formatted
	ErrMissingType = errors.New("commit type is required")

	// ErrEmptySubject is returned when a draft with a blank subject is formatted
	ErrEmptySubject = errors.New("commit subject is empty")

	// ErrInvalidScope is returned when a draft scope contains parentheses
	ErrInvalidScope = errors.New("commit scope must not contain parentheses")

	// ErrMalformedMessage is returned when a message has no conventional header
	ErrMalformedMessage = errors.New("malformed commit message")

	// ErrUnknownType is returned when a header names a type outside the known set
	ErrUnknownType = errors.New("unknown commit type")
)
