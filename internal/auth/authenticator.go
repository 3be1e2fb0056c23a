package auth

import (
	"context"

	"github.com/mmynk/giftshuffler/internal/models"
)

// Authenticator verifies organizer credentials.
// Only password authentication exists today; the interface keeps the service
// layer unaware of which method is in use.
type Authenticator interface {
	// Register creates an organizer account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.Organizer, error)

	// Authenticate verifies the credential and returns the organizer on success.
	Authenticate(ctx context.Context, email, credential string) (*models.Organizer, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
