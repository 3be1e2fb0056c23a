package edition

import (
	"errors"
	"fmt"
)

// Kind categorizes shuffle failures.
type Kind string

const (
	// KindNotFound means the edition does not exist.
	KindNotFound Kind = "NOT_FOUND"

	// KindAlreadyShuffled means assignments were already committed.
	KindAlreadyShuffled Kind = "ALREADY_SHUFFLED"

	// KindInsufficientParticipants means the group has fewer than two members.
	KindInsufficientParticipants Kind = "INSUFFICIENT_PARTICIPANTS"

	// KindNoValidAssignment means the generator produced nothing. The edition is
	// unchanged and may be retried after membership or history changes.
	KindNoValidAssignment Kind = "NO_VALID_ASSIGNMENT"

	// KindBackendUnavailable means the store failed. Nothing was written.
	KindBackendUnavailable Kind = "BACKEND_UNAVAILABLE"
)

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrNotFound                 = &Error{Kind: KindNotFound}
	ErrAlreadyShuffled          = &Error{Kind: KindAlreadyShuffled}
	ErrInsufficientParticipants = &Error{Kind: KindInsufficientParticipants}
	ErrNoValidAssignment        = &Error{Kind: KindNoValidAssignment}
	ErrBackendUnavailable       = &Error{Kind: KindBackendUnavailable}
)

// Error is returned by Shuffler.Run.
type Error struct {
	// Kind identifies the error category.
	Kind Kind

	// EditionID identifies the affected edition.
	EditionID string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.EditionID != "" {
		msg = fmt.Sprintf("%s (edition=%s)", msg, e.EditionID)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newError(kind Kind, editionID, message string, cause error) *Error {
	return &Error{Kind: kind, EditionID: editionID, Message: message, Err: cause}
}
