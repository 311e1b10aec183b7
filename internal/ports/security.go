package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthClaims is the trusted identity produced by token verification. Both the
// HTTP middleware and the WebSocket handshake resolve to this shape, so there
// is exactly one gatekeeping policy regardless of transport.
type AuthClaims struct {
	UserID    uuid.UUID
	Username  string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenSigner issues and verifies bearer credentials. Validity is fixed at
// issuance; there is no refresh flow.
type TokenSigner interface {
	Sign(claims AuthClaims) (string, error)
	ParseAndValidate(raw string) (AuthClaims, error)
}

// PasswordHasher keeps the application layer free of bcrypt specifics.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// GoogleIdentity is the trusted claim extracted from a verified Google ID token.
type GoogleIdentity struct {
	Email string
	Name  string
}

// GoogleVerifier validates a Google-issued credential and returns the identity
// it attests to. Provider internals are out of scope; this is pass/fail plus a
// claim.
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (GoogleIdentity, error)
}
