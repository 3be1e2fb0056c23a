package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Organizer is an account allowed to manage persons, groups, occasions and
// editions when authentication is required.
type Organizer struct {
	// ID is the unique identifier for the organizer (UUID format).
	ID string

	// Email is the organizer's login (unique, stored lowercase).
	Email string

	// DisplayName is shown in the UI.
	DisplayName string

	// PasswordHash is the bcrypt hash of the organizer's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last account change.
	UpdatedAt int64
}

// NewOrganizer builds an organizer with a fresh ID and timestamps.
func NewOrganizer(email, displayName, passwordHash string) *Organizer {
	now := time.Now().Unix()
	return &Organizer{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
