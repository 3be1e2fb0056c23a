package middleware

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/giftshuffler/internal/auth"
	"github.com/mmynk/giftshuffler/internal/models"
)

type ping struct{}

// call runs interceptor around a handler that reports the organizer it sees.
func call(t *testing.T, interceptor connect.UnaryInterceptorFunc, header string) (string, error) {
	t.Helper()
	var seen string
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = GetOrganizerID(ctx)
		return connect.NewResponse(&ping{}), nil
	}

	req := connect.NewRequest(&ping{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	_, err := interceptor(next)(context.Background(), req)
	return seen, err
}

func newToken(t *testing.T, m *auth.JWTManager) string {
	t.Helper()
	organizer := models.NewOrganizer("host@example.com", "Host", "hash")
	organizer.ID = "org-1"
	token, err := m.Generate(organizer)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour)
	token := newToken(t, m)

	tests := []struct {
		name    string
		header  string
		wantID  string
		wantErr bool
	}{
		{"missing header", "", "", true},
		{"wrong scheme", "Basic " + token, "", true},
		{"invalid token", "Bearer garbage", "", true},
		{"valid token", "Bearer " + token, "org-1", false},
		{"lowercase scheme", "bearer " + token, "org-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := call(t, RequireAuth(m), tt.header)
			if tt.wantErr {
				if connect.CodeOf(err) != connect.CodeUnauthenticated {
					t.Fatalf("expected Unauthenticated, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("organizer: expected %q, got %q", tt.wantID, id)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	m := auth.NewJWTManager("secret", time.Hour)

	id, err := call(t, OptionalAuth(m), "")
	if err != nil || id != "" {
		t.Fatalf("anonymous: expected no organizer and no error, got %q, %v", id, err)
	}

	id, err = call(t, OptionalAuth(m), "Bearer garbage")
	if err != nil || id != "" {
		t.Fatalf("bad token: expected no organizer and no error, got %q, %v", id, err)
	}

	id, err = call(t, OptionalAuth(m), "Bearer "+newToken(t, m))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "org-1" {
		t.Errorf("expected org-1, got %q", id)
	}
}

func TestWithOrganizer(t *testing.T) {
	ctx := WithOrganizer(context.Background(), "org-1", "host@example.com")
	if GetOrganizerID(ctx) != "org-1" || GetEmail(ctx) != "host@example.com" {
		t.Errorf("unexpected identity %q / %q", GetOrganizerID(ctx), GetEmail(ctx))
	}
	if GetOrganizerID(context.Background()) != "" {
		t.Error("expected empty organizer on a bare context")
	}
}
