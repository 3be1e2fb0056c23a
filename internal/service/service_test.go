package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/giftshuffler/internal/auth"
	"github.com/mmynk/giftshuffler/internal/edition"
	"github.com/mmynk/giftshuffler/internal/middleware"
	"github.com/mmynk/giftshuffler/internal/shuffle"
	"github.com/mmynk/giftshuffler/internal/storage"
	"github.com/mmynk/giftshuffler/internal/storage/sqlite"
	"github.com/mmynk/giftshuffler/pkg/api"
	"github.com/mmynk/giftshuffler/pkg/api/apiconnect"
)

type testClients struct {
	directory apiconnect.DirectoryServiceClient
	editions  apiconnect.EditionServiceClient
	auth      apiconnect.AuthServiceClient
	store     *sqlite.SQLiteStore
}

// setupTestServer creates a test server with all services on a fresh SQLite database.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	shuffler := edition.NewShuffler(store, shuffle.NewGenerator(shuffle.WithFeasibilityCheck(true)))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewDirectoryServiceHandler(NewDirectoryService(store)))
	mux.Handle(apiconnect.NewEditionServiceHandler(NewEditionService(store, shuffler)))
	mux.Handle(apiconnect.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, store, slog.Default()),
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)),
	))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testClients{
		directory: apiconnect.NewDirectoryServiceClient(http.DefaultClient, server.URL),
		editions:  apiconnect.NewEditionServiceClient(http.DefaultClient, server.URL),
		auth:      apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		store:     store,
	}
}

// createGroup creates persons with the given names and a group containing them.
func createGroup(t *testing.T, c *testClients, name string, members ...string) *api.Group {
	t.Helper()
	ctx := context.Background()

	var ids []string
	for _, m := range members {
		resp, err := c.directory.CreatePerson(ctx, connect.NewRequest(&api.CreatePersonRequest{Name: m}))
		if err != nil {
			t.Fatalf("CreatePerson(%s) failed: %v", m, err)
		}
		ids = append(ids, resp.Msg.Person.ID)
	}

	resp, err := c.directory.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{Name: name, MemberIDs: ids}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func createOccasion(t *testing.T, c *testClients, name string) *api.Occasion {
	t.Helper()
	resp, err := c.directory.CreateOccasion(context.Background(), connect.NewRequest(&api.CreateOccasionRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateOccasion failed: %v", err)
	}
	return resp.Msg.Occasion
}

func createEdition(t *testing.T, c *testClients, groupID, occasionID string) *api.Edition {
	t.Helper()
	resp, err := c.editions.CreateEdition(context.Background(), connect.NewRequest(&api.CreateEditionRequest{
		GroupID:    groupID,
		OccasionID: occasionID,
	}))
	if err != nil {
		t.Fatalf("CreateEdition failed: %v", err)
	}
	return resp.Msg.Edition
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("code: expected %v, got %v (%v)", want, got, err)
	}
}

func TestHealthHandler(t *testing.T) {
	c := setupTestServer(t)

	rec := httptest.NewRecorder()
	HealthHandler(c.store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	c.store.Close()
	rec = httptest.NewRecorder()
	HealthHandler(c.store).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	HealthHandler(c.store).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *connect.Error
		want connect.Code
	}{
		{name: "not found", err: storageError(fmt.Errorf("group g: %w", storage.ErrNotFound)), want: connect.CodeNotFound},
		{name: "already exists", err: storageError(storage.ErrAlreadyExists), want: connect.CodeAlreadyExists},
		{name: "unknown storage error", err: storageError(errors.New("boom")), want: connect.CodeInternal},
		{name: "shuffle not found", err: shuffleError(edition.ErrNotFound), want: connect.CodeNotFound},
		{name: "already shuffled", err: shuffleError(edition.ErrAlreadyShuffled), want: connect.CodeFailedPrecondition},
		{name: "insufficient", err: shuffleError(edition.ErrInsufficientParticipants), want: connect.CodeFailedPrecondition},
		{name: "no valid assignment", err: shuffleError(edition.ErrNoValidAssignment), want: connect.CodeAborted},
		{name: "backend down", err: shuffleError(edition.ErrBackendUnavailable), want: connect.CodeUnavailable},
		{name: "unclassified", err: shuffleError(errors.New("boom")), want: connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Code(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
