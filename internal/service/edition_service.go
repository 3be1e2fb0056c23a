package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/internal/edition"
	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/storage"
	"github.com/mmynk/giftshuffler/pkg/api"
	"github.com/mmynk/giftshuffler/pkg/api/apiconnect"
)

// EditionService implements the Connect EditionService.
type EditionService struct {
	apiconnect.UnimplementedEditionServiceHandler
	store    storage.EditionStore
	shuffler *edition.Shuffler
}

var _ apiconnect.EditionServiceHandler = (*EditionService)(nil)

// NewEditionService creates a new EditionService. The shuffler must be backed
// by the same store.
func NewEditionService(store storage.EditionStore, shuffler *edition.Shuffler) *EditionService {
	return &EditionService{store: store, shuffler: shuffler}
}

// CreateEdition starts a new, unshuffled edition for a group and occasion.
func (s *EditionService) CreateEdition(ctx context.Context, req *connect.Request[api.CreateEditionRequest]) (*connect.Response[api.CreateEditionResponse], error) {
	trim(&req.Msg.Name)
	slog.Info("CreateEdition request received",
		"group_id", req.Msg.GroupID,
		"occasion_id", req.Msg.OccasionID,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	ed := &models.Edition{
		Name:       req.Msg.Name,
		GroupID:    req.Msg.GroupID,
		OccasionID: req.Msg.OccasionID,
	}
	if err := s.store.CreateEdition(ctx, ed); err != nil {
		slog.Error("CreateEdition failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Edition created",
		"edition_id", ed.ID,
		"number", ed.Number,
		"name", ed.Name,
	)

	return connect.NewResponse(&api.CreateEditionResponse{Edition: toAPIEdition(ed)}), nil
}

// GetEdition retrieves an edition by ID.
func (s *EditionService) GetEdition(ctx context.Context, req *connect.Request[api.GetEditionRequest]) (*connect.Response[api.GetEditionResponse], error) {
	slog.Info("GetEdition request received", "edition_id", req.Msg.EditionID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	ed, err := s.store.GetEdition(ctx, req.Msg.EditionID)
	if err != nil {
		slog.Error("GetEdition failed", "edition_id", req.Msg.EditionID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("GetEdition successful", "edition_id", ed.ID, "is_shuffled", ed.IsShuffled)

	return connect.NewResponse(&api.GetEditionResponse{Edition: toAPIEdition(ed)}), nil
}

// ListEditions lists editions newest first, optionally filtered by group and
// occasion.
func (s *EditionService) ListEditions(ctx context.Context, req *connect.Request[api.ListEditionsRequest]) (*connect.Response[api.ListEditionsResponse], error) {
	slog.Info("ListEditions request received",
		"group_id", req.Msg.GroupID,
		"occasion_id", req.Msg.OccasionID,
	)

	editions, err := s.store.ListEditions(ctx, models.EditionFilter{
		GroupID:    req.Msg.GroupID,
		OccasionID: req.Msg.OccasionID,
	})
	if err != nil {
		slog.Error("ListEditions failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Edition, len(editions))
	for i, e := range editions {
		out[i] = toAPIEdition(e)
	}

	slog.Info("ListEditions successful", "count", len(out))

	return connect.NewResponse(&api.ListEditionsResponse{Editions: out}), nil
}

// DeleteEdition removes an edition and its assignments. Its pairs stop
// counting as history for later editions.
func (s *EditionService) DeleteEdition(ctx context.Context, req *connect.Request[api.DeleteEditionRequest]) (*connect.Response[api.DeleteEditionResponse], error) {
	slog.Info("DeleteEdition request received", "edition_id", req.Msg.EditionID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteEdition(ctx, req.Msg.EditionID); err != nil {
		slog.Error("DeleteEdition failed", "edition_id", req.Msg.EditionID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Edition deleted", "edition_id", req.Msg.EditionID)

	return connect.NewResponse(&api.DeleteEditionResponse{}), nil
}

// ShuffleEdition draws and commits the edition's assignments.
func (s *EditionService) ShuffleEdition(ctx context.Context, req *connect.Request[api.ShuffleEditionRequest]) (*connect.Response[api.ShuffleEditionResponse], error) {
	slog.Info("ShuffleEdition request received", "edition_id", req.Msg.EditionID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	result, err := s.shuffler.Run(ctx, req.Msg.EditionID)
	if err != nil {
		if edition.KindOf(err) == edition.KindBackendUnavailable {
			slog.Error("ShuffleEdition failed", "edition_id", req.Msg.EditionID, "error", err)
		} else {
			slog.Warn("ShuffleEdition refused", "edition_id", req.Msg.EditionID, "error", err)
		}
		return nil, shuffleError(err)
	}

	ed, err := s.store.GetEdition(ctx, result.EditionID)
	if err != nil {
		slog.Error("Failed to fetch shuffled edition", "edition_id", result.EditionID, "error", err)
		return nil, storageError(err)
	}

	assignments, err := s.store.ListAssignments(ctx, result.EditionID)
	if err != nil {
		slog.Error("Failed to fetch assignments", "edition_id", result.EditionID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("ShuffleEdition successful",
		"edition_id", result.EditionID,
		"assignments_count", len(assignments),
		"attempts", result.Attempts,
	)

	return connect.NewResponse(&api.ShuffleEditionResponse{
		Edition:     toAPIEdition(ed),
		Assignments: toAPIAssignments(assignments),
		Attempts:    result.Attempts,
	}), nil
}

// ListAssignments returns an edition's assignments ordered by giver name.
func (s *EditionService) ListAssignments(ctx context.Context, req *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error) {
	slog.Info("ListAssignments request received", "edition_id", req.Msg.EditionID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	assignments, err := s.store.ListAssignments(ctx, req.Msg.EditionID)
	if err != nil {
		slog.Error("ListAssignments failed", "edition_id", req.Msg.EditionID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("ListAssignments successful", "edition_id", req.Msg.EditionID, "count", len(assignments))

	return connect.NewResponse(&api.ListAssignmentsResponse{Assignments: toAPIAssignments(assignments)}), nil
}
