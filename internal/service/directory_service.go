package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/storage"
	"github.com/mmynk/giftshuffler/pkg/api"
	"github.com/mmynk/giftshuffler/pkg/api/apiconnect"
)

// DirectoryService implements the Connect DirectoryService: persons, groups
// and occasions.
type DirectoryService struct {
	apiconnect.UnimplementedDirectoryServiceHandler
	store storage.DirectoryStore
}

var _ apiconnect.DirectoryServiceHandler = (*DirectoryService)(nil)

// NewDirectoryService creates a new DirectoryService with the given storage backend.
func NewDirectoryService(store storage.DirectoryStore) *DirectoryService {
	return &DirectoryService{store: store}
}

// CreatePerson creates a new person.
func (s *DirectoryService) CreatePerson(ctx context.Context, req *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error) {
	trim(&req.Msg.Name)
	slog.Info("CreatePerson request received", "name", req.Msg.Name)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	person := &models.Person{Name: req.Msg.Name}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		slog.Error("CreatePerson failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Person created", "person_id", person.ID)

	return connect.NewResponse(&api.CreatePersonResponse{Person: toAPIPerson(person)}), nil
}

// ListPersons retrieves all persons ordered by name.
func (s *DirectoryService) ListPersons(ctx context.Context, req *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error) {
	slog.Info("ListPersons request received")

	persons, err := s.store.ListPersons(ctx)
	if err != nil {
		slog.Error("ListPersons failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Person, len(persons))
	for i, p := range persons {
		out[i] = toAPIPerson(p)
	}

	slog.Info("ListPersons successful", "count", len(out))

	return connect.NewResponse(&api.ListPersonsResponse{Persons: out}), nil
}

// DeletePerson removes a person and their group memberships. Assignments of
// past editions keep referring to the deleted person.
func (s *DirectoryService) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	slog.Info("DeletePerson request received", "person_id", req.Msg.PersonID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeletePerson(ctx, req.Msg.PersonID); err != nil {
		slog.Error("DeletePerson failed", "person_id", req.Msg.PersonID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Person deleted", "person_id", req.Msg.PersonID)

	return connect.NewResponse(&api.DeletePersonResponse{}), nil
}

// CreateGroup creates a new group with the given members.
func (s *DirectoryService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	trim(&req.Msg.Name)
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.MemberIDs),
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	group := &models.Group{Name: req.Msg.Name}
	for _, id := range req.Msg.MemberIDs {
		group.Members = append(group.Members, models.Person{ID: id})
	}

	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, storageError(err)
	}

	// Re-read to return member names in order.
	created, err := s.store.GetGroup(ctx, group.ID)
	if err != nil {
		slog.Error("Failed to fetch created group", "group_id", group.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Group created", "group_id", created.ID, "members_count", len(created.Members))

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(created)}), nil
}

// GetGroup retrieves a group and its current members.
func (s *DirectoryService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// ListGroups retrieves all groups.
func (s *DirectoryService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Group, len(groups))
	for i, g := range groups {
		out[i] = toAPIGroup(g)
	}

	slog.Info("ListGroups successful", "count", len(out))

	return connect.NewResponse(&api.ListGroupsResponse{Groups: out}), nil
}

// DeleteGroup removes a group together with its editions.
func (s *DirectoryService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupID)

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// AddGroupMember adds a person to a group. Adding an existing member succeeds.
func (s *DirectoryService) AddGroupMember(ctx context.Context, req *connect.Request[api.AddGroupMemberRequest]) (*connect.Response[api.AddGroupMemberResponse], error) {
	slog.Info("AddGroupMember request received",
		"group_id", req.Msg.GroupID,
		"person_id", req.Msg.PersonID,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.AddGroupMember(ctx, req.Msg.GroupID, req.Msg.PersonID); err != nil {
		slog.Error("AddGroupMember failed", "error", err)
		return nil, storageError(err)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Group member added", "group_id", group.ID, "members_count", len(group.Members))

	return connect.NewResponse(&api.AddGroupMemberResponse{Group: toAPIGroup(group)}), nil
}

// RemoveGroupMember removes a person from a group.
func (s *DirectoryService) RemoveGroupMember(ctx context.Context, req *connect.Request[api.RemoveGroupMemberRequest]) (*connect.Response[api.RemoveGroupMemberResponse], error) {
	slog.Info("RemoveGroupMember request received",
		"group_id", req.Msg.GroupID,
		"person_id", req.Msg.PersonID,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.RemoveGroupMember(ctx, req.Msg.GroupID, req.Msg.PersonID); err != nil {
		slog.Error("RemoveGroupMember failed", "error", err)
		return nil, storageError(err)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("Failed to fetch updated group", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Group member removed", "group_id", group.ID, "members_count", len(group.Members))

	return connect.NewResponse(&api.RemoveGroupMemberResponse{Group: toAPIGroup(group)}), nil
}

// CreateOccasion creates a new occasion.
func (s *DirectoryService) CreateOccasion(ctx context.Context, req *connect.Request[api.CreateOccasionRequest]) (*connect.Response[api.CreateOccasionResponse], error) {
	trim(&req.Msg.Name, &req.Msg.Description)
	slog.Info("CreateOccasion request received", "name", req.Msg.Name)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	occasion := &models.Occasion{Name: req.Msg.Name, Description: req.Msg.Description}
	if err := s.store.CreateOccasion(ctx, occasion); err != nil {
		slog.Error("CreateOccasion failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Occasion created", "occasion_id", occasion.ID)

	return connect.NewResponse(&api.CreateOccasionResponse{Occasion: toAPIOccasion(occasion)}), nil
}

// ListOccasions retrieves all occasions.
func (s *DirectoryService) ListOccasions(ctx context.Context, req *connect.Request[api.ListOccasionsRequest]) (*connect.Response[api.ListOccasionsResponse], error) {
	slog.Info("ListOccasions request received")

	occasions, err := s.store.ListOccasions(ctx)
	if err != nil {
		slog.Error("ListOccasions failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Occasion, len(occasions))
	for i, o := range occasions {
		out[i] = toAPIOccasion(o)
	}

	slog.Info("ListOccasions successful", "count", len(out))

	return connect.NewResponse(&api.ListOccasionsResponse{Occasions: out}), nil
}

// DeleteOccasion removes an occasion together with its editions.
func (s *DirectoryService) DeleteOccasion(ctx context.Context, req *connect.Request[api.DeleteOccasionRequest]) (*connect.Response[api.DeleteOccasionResponse], error) {
	slog.Info("DeleteOccasion request received", "occasion_id", req.Msg.OccasionID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteOccasion(ctx, req.Msg.OccasionID); err != nil {
		slog.Error("DeleteOccasion failed", "occasion_id", req.Msg.OccasionID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Occasion deleted", "occasion_id", req.Msg.OccasionID)

	return connect.NewResponse(&api.DeleteOccasionResponse{}), nil
}
