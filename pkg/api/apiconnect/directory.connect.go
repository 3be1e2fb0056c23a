package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/pkg/api"
)

// DirectoryServiceName is the fully-qualified name of the DirectoryService.
const DirectoryServiceName = "giftshuffler.v1.DirectoryService"

// Procedure paths of the DirectoryService.
const (
	DirectoryServiceCreatePersonProcedure      = "/giftshuffler.v1.DirectoryService/CreatePerson"
	DirectoryServiceListPersonsProcedure       = "/giftshuffler.v1.DirectoryService/ListPersons"
	DirectoryServiceDeletePersonProcedure      = "/giftshuffler.v1.DirectoryService/DeletePerson"
	DirectoryServiceCreateGroupProcedure       = "/giftshuffler.v1.DirectoryService/CreateGroup"
	DirectoryServiceGetGroupProcedure          = "/giftshuffler.v1.DirectoryService/GetGroup"
	DirectoryServiceListGroupsProcedure        = "/giftshuffler.v1.DirectoryService/ListGroups"
	DirectoryServiceDeleteGroupProcedure       = "/giftshuffler.v1.DirectoryService/DeleteGroup"
	DirectoryServiceAddGroupMemberProcedure    = "/giftshuffler.v1.DirectoryService/AddGroupMember"
	DirectoryServiceRemoveGroupMemberProcedure = "/giftshuffler.v1.DirectoryService/RemoveGroupMember"
	DirectoryServiceCreateOccasionProcedure    = "/giftshuffler.v1.DirectoryService/CreateOccasion"
	DirectoryServiceListOccasionsProcedure     = "/giftshuffler.v1.DirectoryService/ListOccasions"
	DirectoryServiceDeleteOccasionProcedure    = "/giftshuffler.v1.DirectoryService/DeleteOccasion"
)

// DirectoryServiceClient is a client for the DirectoryService.
type DirectoryServiceClient interface {
	CreatePerson(context.Context, *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error)
	ListPersons(context.Context, *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error)
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error)
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error)
	AddGroupMember(context.Context, *connect.Request[api.AddGroupMemberRequest]) (*connect.Response[api.AddGroupMemberResponse], error)
	RemoveGroupMember(context.Context, *connect.Request[api.RemoveGroupMemberRequest]) (*connect.Response[api.RemoveGroupMemberResponse], error)
	CreateOccasion(context.Context, *connect.Request[api.CreateOccasionRequest]) (*connect.Response[api.CreateOccasionResponse], error)
	ListOccasions(context.Context, *connect.Request[api.ListOccasionsRequest]) (*connect.Response[api.ListOccasionsResponse], error)
	DeleteOccasion(context.Context, *connect.Request[api.DeleteOccasionRequest]) (*connect.Response[api.DeleteOccasionResponse], error)
}

// NewDirectoryServiceClient constructs a client for the DirectoryService.
// baseURL is the server root, e.g. http://localhost:8080.
func NewDirectoryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DirectoryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &directoryServiceClient{
		createPerson:      connect.NewClient[api.CreatePersonRequest, api.CreatePersonResponse](httpClient, baseURL+DirectoryServiceCreatePersonProcedure, opts...),
		listPersons:       connect.NewClient[api.ListPersonsRequest, api.ListPersonsResponse](httpClient, baseURL+DirectoryServiceListPersonsProcedure, opts...),
		deletePerson:      connect.NewClient[api.DeletePersonRequest, api.DeletePersonResponse](httpClient, baseURL+DirectoryServiceDeletePersonProcedure, opts...),
		createGroup:       connect.NewClient[api.CreateGroupRequest, api.CreateGroupResponse](httpClient, baseURL+DirectoryServiceCreateGroupProcedure, opts...),
		getGroup:          connect.NewClient[api.GetGroupRequest, api.GetGroupResponse](httpClient, baseURL+DirectoryServiceGetGroupProcedure, opts...),
		listGroups:        connect.NewClient[api.ListGroupsRequest, api.ListGroupsResponse](httpClient, baseURL+DirectoryServiceListGroupsProcedure, opts...),
		deleteGroup:       connect.NewClient[api.DeleteGroupRequest, api.DeleteGroupResponse](httpClient, baseURL+DirectoryServiceDeleteGroupProcedure, opts...),
		addGroupMember:    connect.NewClient[api.AddGroupMemberRequest, api.AddGroupMemberResponse](httpClient, baseURL+DirectoryServiceAddGroupMemberProcedure, opts...),
		removeGroupMember: connect.NewClient[api.RemoveGroupMemberRequest, api.RemoveGroupMemberResponse](httpClient, baseURL+DirectoryServiceRemoveGroupMemberProcedure, opts...),
		createOccasion:    connect.NewClient[api.CreateOccasionRequest, api.CreateOccasionResponse](httpClient, baseURL+DirectoryServiceCreateOccasionProcedure, opts...),
		listOccasions:     connect.NewClient[api.ListOccasionsRequest, api.ListOccasionsResponse](httpClient, baseURL+DirectoryServiceListOccasionsProcedure, opts...),
		deleteOccasion:    connect.NewClient[api.DeleteOccasionRequest, api.DeleteOccasionResponse](httpClient, baseURL+DirectoryServiceDeleteOccasionProcedure, opts...),
	}
}

type directoryServiceClient struct {
	createPerson      *connect.Client[api.CreatePersonRequest, api.CreatePersonResponse]
	listPersons       *connect.Client[api.ListPersonsRequest, api.ListPersonsResponse]
	deletePerson      *connect.Client[api.DeletePersonRequest, api.DeletePersonResponse]
	createGroup       *connect.Client[api.CreateGroupRequest, api.CreateGroupResponse]
	getGroup          *connect.Client[api.GetGroupRequest, api.GetGroupResponse]
	listGroups        *connect.Client[api.ListGroupsRequest, api.ListGroupsResponse]
	deleteGroup       *connect.Client[api.DeleteGroupRequest, api.DeleteGroupResponse]
	addGroupMember    *connect.Client[api.AddGroupMemberRequest, api.AddGroupMemberResponse]
	removeGroupMember *connect.Client[api.RemoveGroupMemberRequest, api.RemoveGroupMemberResponse]
	createOccasion    *connect.Client[api.CreateOccasionRequest, api.CreateOccasionResponse]
	listOccasions     *connect.Client[api.ListOccasionsRequest, api.ListOccasionsResponse]
	deleteOccasion    *connect.Client[api.DeleteOccasionRequest, api.DeleteOccasionResponse]
}

func (c *directoryServiceClient) CreatePerson(ctx context.Context, req *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error) {
	return c.createPerson.CallUnary(ctx, req)
}

func (c *directoryServiceClient) ListPersons(ctx context.Context, req *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error) {
	return c.listPersons.CallUnary(ctx, req)
}

func (c *directoryServiceClient) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

func (c *directoryServiceClient) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *directoryServiceClient) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *directoryServiceClient) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *directoryServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

func (c *directoryServiceClient) AddGroupMember(ctx context.Context, req *connect.Request[api.AddGroupMemberRequest]) (*connect.Response[api.AddGroupMemberResponse], error) {
	return c.addGroupMember.CallUnary(ctx, req)
}

func (c *directoryServiceClient) RemoveGroupMember(ctx context.Context, req *connect.Request[api.RemoveGroupMemberRequest]) (*connect.Response[api.RemoveGroupMemberResponse], error) {
	return c.removeGroupMember.CallUnary(ctx, req)
}

func (c *directoryServiceClient) CreateOccasion(ctx context.Context, req *connect.Request[api.CreateOccasionRequest]) (*connect.Response[api.CreateOccasionResponse], error) {
	return c.createOccasion.CallUnary(ctx, req)
}

func (c *directoryServiceClient) ListOccasions(ctx context.Context, req *connect.Request[api.ListOccasionsRequest]) (*connect.Response[api.ListOccasionsResponse], error) {
	return c.listOccasions.CallUnary(ctx, req)
}

func (c *directoryServiceClient) DeleteOccasion(ctx context.Context, req *connect.Request[api.DeleteOccasionRequest]) (*connect.Response[api.DeleteOccasionResponse], error) {
	return c.deleteOccasion.CallUnary(ctx, req)
}

// DirectoryServiceHandler is implemented by the server side of the DirectoryService.
type DirectoryServiceHandler interface {
	CreatePerson(context.Context, *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error)
	ListPersons(context.Context, *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error)
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error)
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error)
	AddGroupMember(context.Context, *connect.Request[api.AddGroupMemberRequest]) (*connect.Response[api.AddGroupMemberResponse], error)
	RemoveGroupMember(context.Context, *connect.Request[api.RemoveGroupMemberRequest]) (*connect.Response[api.RemoveGroupMemberResponse], error)
	CreateOccasion(context.Context, *connect.Request[api.CreateOccasionRequest]) (*connect.Response[api.CreateOccasionResponse], error)
	ListOccasions(context.Context, *connect.Request[api.ListOccasionsRequest]) (*connect.Response[api.ListOccasionsResponse], error)
	DeleteOccasion(context.Context, *connect.Request[api.DeleteOccasionRequest]) (*connect.Response[api.DeleteOccasionResponse], error)
}

// NewDirectoryServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewDirectoryServiceHandler(svc DirectoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + DirectoryServiceName + "/", routes{
		DirectoryServiceCreatePersonProcedure:      connect.NewUnaryHandler(DirectoryServiceCreatePersonProcedure, svc.CreatePerson, opts...),
		DirectoryServiceListPersonsProcedure:       connect.NewUnaryHandler(DirectoryServiceListPersonsProcedure, svc.ListPersons, opts...),
		DirectoryServiceDeletePersonProcedure:      connect.NewUnaryHandler(DirectoryServiceDeletePersonProcedure, svc.DeletePerson, opts...),
		DirectoryServiceCreateGroupProcedure:       connect.NewUnaryHandler(DirectoryServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		DirectoryServiceGetGroupProcedure:          connect.NewUnaryHandler(DirectoryServiceGetGroupProcedure, svc.GetGroup, opts...),
		DirectoryServiceListGroupsProcedure:        connect.NewUnaryHandler(DirectoryServiceListGroupsProcedure, svc.ListGroups, opts...),
		DirectoryServiceDeleteGroupProcedure:       connect.NewUnaryHandler(DirectoryServiceDeleteGroupProcedure, svc.DeleteGroup, opts...),
		DirectoryServiceAddGroupMemberProcedure:    connect.NewUnaryHandler(DirectoryServiceAddGroupMemberProcedure, svc.AddGroupMember, opts...),
		DirectoryServiceRemoveGroupMemberProcedure: connect.NewUnaryHandler(DirectoryServiceRemoveGroupMemberProcedure, svc.RemoveGroupMember, opts...),
		DirectoryServiceCreateOccasionProcedure:    connect.NewUnaryHandler(DirectoryServiceCreateOccasionProcedure, svc.CreateOccasion, opts...),
		DirectoryServiceListOccasionsProcedure:     connect.NewUnaryHandler(DirectoryServiceListOccasionsProcedure, svc.ListOccasions, opts...),
		DirectoryServiceDeleteOccasionProcedure:    connect.NewUnaryHandler(DirectoryServiceDeleteOccasionProcedure, svc.DeleteOccasion, opts...),
	}
}

// UnimplementedDirectoryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedDirectoryServiceHandler struct{}

func (UnimplementedDirectoryServiceHandler) CreatePerson(context.Context, *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.CreatePerson is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) ListPersons(context.Context, *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.ListPersons is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.DeletePerson is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.CreateGroup is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.GetGroup is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.ListGroups is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.DeleteGroup is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) AddGroupMember(context.Context, *connect.Request[api.AddGroupMemberRequest]) (*connect.Response[api.AddGroupMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.AddGroupMember is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) RemoveGroupMember(context.Context, *connect.Request[api.RemoveGroupMemberRequest]) (*connect.Response[api.RemoveGroupMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.RemoveGroupMember is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) CreateOccasion(context.Context, *connect.Request[api.CreateOccasionRequest]) (*connect.Response[api.CreateOccasionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.CreateOccasion is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) ListOccasions(context.Context, *connect.Request[api.ListOccasionsRequest]) (*connect.Response[api.ListOccasionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.ListOccasions is not implemented"))
}

func (UnimplementedDirectoryServiceHandler) DeleteOccasion(context.Context, *connect.Request[api.DeleteOccasionRequest]) (*connect.Response[api.DeleteOccasionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.DirectoryService.DeleteOccasion is not implemented"))
}
