package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/giftshuffler/internal/models"
	"github.com/mmynk/giftshuffler/internal/storage/memory"
)

func newAuthenticator() *PasswordAuthenticator {
	return NewPasswordAuthenticator(memory.New()).WithCost(bcrypt.MinCost)
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := newAuthenticator()

	organizer, err := a.Register(ctx, " Ann@Example.com", "Ann", "correct horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if organizer.Email != "ann@example.com" {
		t.Errorf("expected normalized email, got %q", organizer.Email)
	}
	if organizer.PasswordHash == "correct horse" {
		t.Error("password stored in plain text")
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := a.Register(ctx, "ann@example.com", "Other", "another password")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := a.Register(ctx, "bob@example.com", "Bob", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("authenticate", func(t *testing.T) {
		got, err := a.Authenticate(ctx, "ANN@example.com", "correct horse")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.ID != organizer.ID {
			t.Errorf("expected %s, got %s", organizer.ID, got.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "ann@example.com", "wrong horse")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "nobody@example.com", "correct horse")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	organizer := models.NewOrganizer("ann@example.com", "Ann", "hash")

	token, err := m.Generate(organizer)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.OrganizerID() != organizer.ID || claims.Email != organizer.Email {
		t.Errorf("unexpected claims %+v", claims)
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage",
			token: func() string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func() string {
				tok, _ := NewJWTManager("other-secret", time.Hour).Generate(organizer)
				return tok
			},
		},
		{
			name: "expired",
			token: func() string {
				tok, _ := NewJWTManager("test-secret", -time.Minute).Generate(organizer)
				return tok
			},
		},
		{
			name: "tampered",
			token: func() string {
				parts := strings.Split(token, ".")
				sig := []byte(parts[2])
				if sig[0] == 'A' {
					sig[0] = 'B'
				} else {
					sig[0] = 'A'
				}
				return parts[0] + "." + parts[1] + "." + string(sig)
			},
		},
		{
			name: "unsigned",
			token: func() string {
				tok, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: organizer.ID, Issuer: issuer}}).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token()); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}

	expired, _ := NewJWTManager("test-secret", -time.Minute).Generate(organizer)
	if _, err := m.Validate(expired); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}
