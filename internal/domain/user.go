package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Auth provider tags. Google-provisioned accounts carry a throwaway local password
// so the credential column stays non-null without ever being a usable login path.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is the canonical identity record. Chat, notes, tasks, and the job board all
// reference users by UserID; nothing outside the auth flows reads PasswordHash.
type User struct {
	UserID       uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	AuthProvider string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the identity projection embedded in messages, tasks, and search
// results. It exists so denormalized read-joins never leak credential state.
type PublicUser struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{UserID: u.UserID, Username: u.Username, Email: u.Email}
}

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// ValidateRegistration enforces the baseline account policy.
func ValidateRegistration(username, email, password string) error {
	if len(strings.TrimSpace(username)) < minUsernameLength {
		return fmt.Errorf("%w: username must be at least %d characters", ErrInvalidInput, minUsernameLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
