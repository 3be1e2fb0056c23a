package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/pkg/api"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "giftshuffler.v1.AuthService"

// Procedure paths of the AuthService.
const (
	AuthServiceRegisterProcedure            = "/giftshuffler.v1.AuthService/Register"
	AuthServiceLoginProcedure               = "/giftshuffler.v1.AuthService/Login"
	AuthServiceGetCurrentOrganizerProcedure = "/giftshuffler.v1.AuthService/GetCurrentOrganizer"
)

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentOrganizer(context.Context, *connect.Request[api.GetCurrentOrganizerRequest]) (*connect.Response[api.GetCurrentOrganizerResponse], error)
}

// NewAuthServiceClient constructs a client for the AuthService.
// baseURL is the server root, e.g. http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		register:            connect.NewClient[api.RegisterRequest, api.RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:               connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentOrganizer: connect.NewClient[api.GetCurrentOrganizerRequest, api.GetCurrentOrganizerResponse](httpClient, baseURL+AuthServiceGetCurrentOrganizerProcedure, opts...),
	}
}

type authServiceClient struct {
	register            *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login               *connect.Client[api.LoginRequest, api.LoginResponse]
	getCurrentOrganizer *connect.Client[api.GetCurrentOrganizerRequest, api.GetCurrentOrganizerResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentOrganizer(ctx context.Context, req *connect.Request[api.GetCurrentOrganizerRequest]) (*connect.Response[api.GetCurrentOrganizerResponse], error) {
	return c.getCurrentOrganizer.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the server side of the AuthService.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentOrganizer(context.Context, *connect.Request[api.GetCurrentOrganizerRequest]) (*connect.Response[api.GetCurrentOrganizerResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", routes{
		AuthServiceRegisterProcedure:            connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...),
		AuthServiceLoginProcedure:               connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceGetCurrentOrganizerProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentOrganizerProcedure, svc.GetCurrentOrganizer, opts...),
	}
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.AuthService.Register is not implemented"))
}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) GetCurrentOrganizer(context.Context, *connect.Request[api.GetCurrentOrganizerRequest]) (*connect.Response[api.GetCurrentOrganizerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("giftshuffler.v1.AuthService.GetCurrentOrganizer is not implemented"))
}
