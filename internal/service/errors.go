package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/internal/edition"
	"github.com/mmynk/giftshuffler/internal/storage"
)

// storageError maps a store failure to a Connect error.
func storageError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, storage.ErrAlreadyShuffled):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// shuffleError maps an edition.Error to a Connect error.
func shuffleError(err error) *connect.Error {
	switch edition.KindOf(err) {
	case edition.KindNotFound:
		return connect.NewError(connect.CodeNotFound, err)
	case edition.KindAlreadyShuffled, edition.KindInsufficientParticipants:
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case edition.KindNoValidAssignment:
		return connect.NewError(connect.CodeAborted, err)
	case edition.KindBackendUnavailable:
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
