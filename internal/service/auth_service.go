package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/internal/auth"
	"github.com/mmynk/giftshuffler/internal/middleware"
	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/storage"
	"github.com/mmynk/giftshuffler/pkg/api"
	"github.com/mmynk/giftshuffler/pkg/api/apiconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	apiconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	organizers    auth.OrganizerStorage
	logger        *slog.Logger
}

var _ apiconnect.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, organizers auth.OrganizerStorage, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		organizers:    organizers,
		logger:        logger,
	}
}

// Register creates a new organizer account and returns a session token.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	trim(&req.Msg.Email, &req.Msg.DisplayName)
	s.logger.Info("Register request", "email", req.Msg.Email)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	organizer, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.DisplayName, req.Msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, expiresAt, err := s.issueToken(organizer)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Organizer registered successfully", "organizer_id", organizer.ID, "email", organizer.Email)
	return connect.NewResponse(&api.RegisterResponse{
		Organizer: toAPIOrganizer(organizer),
		Token:     token,
		ExpiresAt: expiresAt,
	}), nil
}

// Login authenticates an organizer and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	trim(&req.Msg.Email)
	s.logger.Info("Login request", "email", req.Msg.Email)

	if err := validateRequest(req.Msg); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	organizer, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, expiresAt, err := s.issueToken(organizer)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Organizer logged in successfully", "organizer_id", organizer.ID, "email", organizer.Email)
	return connect.NewResponse(&api.LoginResponse{
		Organizer: toAPIOrganizer(organizer),
		Token:     token,
		ExpiresAt: expiresAt,
	}), nil
}

// GetCurrentOrganizer returns the organizer identified by the request's token.
func (s *AuthService) GetCurrentOrganizer(ctx context.Context, req *connect.Request[api.GetCurrentOrganizerRequest]) (*connect.Response[api.GetCurrentOrganizerResponse], error) {
	organizerID := middleware.GetOrganizerID(ctx)
	if organizerID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	s.logger.Info("GetCurrentOrganizer request", "organizer_id", organizerID)

	organizer, err := s.organizers.GetOrganizerByID(ctx, organizerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Token outlived the account.
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
		}
		s.logger.Error("Failed to load organizer", "organizer_id", organizerID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.GetCurrentOrganizerResponse{Organizer: toAPIOrganizer(organizer)}), nil
}

func (s *AuthService) issueToken(organizer *models.Organizer) (string, int64, error) {
	token, err := s.jwtManager.Generate(organizer)
	if err != nil {
		s.logger.Error("Failed to generate token", "organizer_id", organizer.ID, "error", err)
		return "", 0, connect.NewError(connect.CodeInternal, err)
	}
	return token, time.Now().Add(s.jwtManager.TokenDuration()).Unix(), nil
}
