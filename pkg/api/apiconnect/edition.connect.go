package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/pkg/api"
)

// EditionServiceName is the fully-qualified name of the EditionService.
const EditionServiceName = "giftshuffler.v1.EditionService"

// Procedure paths of the EditionService.
const (
	EditionServiceCreateEditionProcedure   = "/giftshuffler.v1.EditionService/CreateEdition"
	EditionServiceGetEditionProcedure      = "/giftshuffler.v1.EditionService/GetEdition"
	EditionServiceListEditionsProcedure    = "/giftshuffler.v1.EditionService/ListEditions"
	EditionServiceDeleteEditionProcedure   = "/giftshuffler.v1.EditionService/DeleteEdition"
	EditionServiceShuffleEditionProcedure  = "/giftshuffler.v1.EditionService/ShuffleEdition"
	EditionServiceListAssignmentsProcedure = "/giftshuffler.v1.EditionService/ListAssignments"
)

// EditionServiceClient is a client for the EditionService.
type EditionServiceClient interface {
	CreateEdition(context.Context, *connect.Request[api.CreateEditionRequest]) (*connect.Response[api.CreateEditionResponse], error)
	GetEdition(context.Context, *connect.Request[api.GetEditionRequest]) (*connect.Response[api.GetEditionResponse], error)
	ListEditions(context.Context, *connect.Request[api.ListEditionsRequest]) (*connect.Response[api.ListEditionsResponse], error)
	DeleteEdition(context.Context, *connect.Request[api.DeleteEditionRequest]) (*connect.Response[api.DeleteEditionResponse], error)
	ShuffleEdition(context.Context, *connect.Request[api.ShuffleEditionRequest]) (*connect.Response[api.ShuffleEditionResponse], error)
	ListAssignments(context.Context, *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error)
}

// NewEditionServiceClient constructs a client for the EditionService.
// baseURL is the server root, e.g. http://localhost:8080.
func NewEditionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EditionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &editionServiceClient{
		createEdition:   connect.NewClient[api.CreateEditionRequest, api.CreateEditionResponse](httpClient, baseURL+EditionServiceCreateEditionProcedure, opts...),
		getEdition:      connect.NewClient[api.GetEditionRequest, api.GetEditionResponse](httpClient, baseURL+EditionServiceGetEditionProcedure, opts...),
		listEditions:    connect.NewClient[api.ListEditionsRequest, api.ListEditionsResponse](httpClient, baseURL+EditionServiceListEditionsProcedure, opts...),
		deleteEdition:   connect.NewClient[api.DeleteEditionRequest, api.DeleteEditionResponse](httpClient, baseURL+EditionServiceDeleteEditionProcedure, opts...),
		shuffleEdition:  connect.NewClient[api.ShuffleEditionRequest, api.ShuffleEditionResponse](httpClient, baseURL+EditionServiceShuffleEditionProcedure, opts...),
		listAssignments: connect.NewClient[api.ListAssignmentsRequest, api.ListAssignmentsResponse](httpClient, baseURL+EditionServiceListAssignmentsProcedure, opts...),
	}
}

type editionServiceClient struct {
	createEdition   *connect.Client[api.CreateEditionRequest, api.CreateEditionResponse]
	getEdition      *connect.Client[api.GetEditionRequest, api.GetEditionResponse]
	listEditions    *connect.Client[api.ListEditionsRequest, api.ListEditionsResponse]
	deleteEdition   *connect.Client[api.DeleteEditionRequest, api.DeleteEditionResponse]
	shuffleEdition  *connect.Client[api.ShuffleEditionRequest, api.ShuffleEditionResponse]
	listAssignments *connect.Client[api.ListAssignmentsRequest, api.ListAssignmentsResponse]
}

func (c *editionServiceClient) CreateEdition(ctx context.Context, req *connect.Request[api.CreateEditionRequest]) (*connect.Response[api.CreateEditionResponse], error) {
	return c.createEdition.CallUnary(ctx, req)
}

func (c *editionServiceClient) GetEdition(ctx context.Context, req *connect.Request[api.GetEditionRequest]) (*connect.Response[api.GetEditionResponse], error) {
	return c.getEdition.CallUnary(ctx, req)
}

func (c *editionServiceClient) ListEditions(ctx context.Context, req *connect.Request[api.ListEditionsRequest]) (*connect.Response[api.ListEditionsResponse], error) {
	return c.listEditions.CallUnary(ctx, req)
}

func (c *editionServiceClient) DeleteEdition(ctx context.Context, req *connect.Request[api.DeleteEditionRequest]) (*connect.Response[api.DeleteEditionResponse], error) {
	return c.deleteEdition.CallUnary(ctx, req)
}

func (c *editionServiceClient) ShuffleEdition(ctx context.Context, req *connect.Request[api.ShuffleEditionRequest]) (*connect.Response[api.ShuffleEditionResponse], error) {
	return c.shuffleEdition.CallUnary(ctx, req)
}

func (c *editionServiceClient) ListAssignments(ctx context.Context, req *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error) {
	return c.listAssignments.CallUnary(ctx, req)
}

// EditionServiceHandler is implemented by the server side of the EditionService.
type EditionServiceHandler interface {
	CreateEdition(context.Context, *connect.Request[api.CreateEditionRequest]) (*connect.Response[api.CreateEditionResponse], error)
	GetEdition(context.Context, *connect.Request[api.GetEditionRequest]) (*connect.Response[api.GetEditionResponse], error)
	ListEditions(context.Context, *connect.Request[api.ListEditionsRequest]) (*connect.Response[api.ListEditionsResponse], error)
	DeleteEdition(context.Context, *connect.Request[api.DeleteEditionRequest]) (*connect.Response[api.DeleteEditionResponse], error)
	ShuffleEdition(context.Context, *connect.Request[api.ShuffleEditionRequest]) (*connect.Response[api.ShuffleEditionResponse], error)
	ListAssignments(context.Context, *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error)
}

// NewEditionServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewEditionServiceHandler(svc EditionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + EditionServiceName + "/", routes{
		EditionServiceCreateEditionProcedure:   connect.NewUnaryHandler(EditionServiceCreateEditionProcedure, svc.CreateEdition, opts...),
		EditionServiceGetEditionProcedure:      connect.NewUnaryHandler(EditionServiceGetEditionProcedure, svc.GetEdition, opts...),
		EditionServiceListEditionsProcedure:    connect.NewUnaryHandler(EditionServiceListEditionsProcedure, svc.ListEditions, opts...),
		EditionServiceDeleteEditionProcedure:   connect.NewUnaryHandler(EditionServiceDeleteEditionProcedure, svc.DeleteEdition, opts...),
		EditionServiceShuffleEditionProcedure:  connect.NewUnaryHandler(EditionServiceShuffleEditionProcedure, svc.ShuffleEdition, opts...),
		EditionServiceListAssignmentsProcedure: connect.NewUnaryHandler(EditionServiceListAssignmentsProcedure, svc.ListAssignments, opts...),
	}
}

// UnimplementedEditionServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedEditionServiceHandler struct{}

func (UnimplementedEditionServiceHandler) CreateEdition(context.Context, *connect.Request[api.CreateEditionRequest]) (*connect.Response[api.CreateEditionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.EditionService.CreateEdition is not implemented"))
}

func (UnimplementedEditionServiceHandler) GetEdition(context.Context, *connect.Request[api.GetEditionRequest]) (*connect.Response[api.GetEditionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.EditionService.GetEdition is not implemented"))
}

func (UnimplementedEditionServiceHandler) ListEditions(context.Context, *connect.Request[api.ListEditionsRequest]) (*connect.Response[api.ListEditionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.EditionService.ListEditions is not implemented"))
}

func (UnimplementedEditionServiceHandler) DeleteEdition(context.Context, *connect.Request[api.DeleteEditionRequest]) (*connect.Response[api.DeleteEditionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.EditionService.DeleteEdition is not implemented"))
}

func (UnimplementedEditionServiceHandler) ShuffleEdition(context.Context, *connect.Request[api.ShuffleEditionRequest]) (*connect.Response[api.ShuffleEditionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.EditionService.ShuffleEdition is not implemented"))
}

func (UnimplementedEditionServiceHandler) ListAssignments(context.Context, *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.EditionService.ListAssignments is not implemented"))
}
