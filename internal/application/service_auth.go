package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/domain"
	"github.com/workhub/workhub/internal/ports"
)

// Register creates a local account. Duplicate emails surface as ErrConflict so
// the adapter can answer without leaking hash state or timing.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (domain.PublicUser, error) {
	email := normalizeEmail(req.Email)
	if err := domain.ValidateRegistration(req.Username, email, req.Password); err != nil {
		return domain.PublicUser{}, err
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.PublicUser{}, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, ports.CreateUserParams{
		Username:     req.Username,
		Email:        email,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		CreatedAtUTC: s.nowFn(),
	})
	if err != nil {
		return domain.PublicUser{}, err
	}

	s.publishUserRegistered(ctx, user)
	return user.Public(), nil
}

// Login validates credentials and issues a 7-day bearer token. Repeated
// failures trip the lockout store before the hash comparison runs.
func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return AuthResponse{}, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	now := s.nowFn()
	if s.lockouts != nil {
		state, err := s.lockouts.Get(ctx, email)
		if err == nil && state.LockedUntil != nil && state.LockedUntil.After(now) {
			return AuthResponse{}, domain.ErrAccountLocked
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.recordLoginFailure(ctx, email, now)
		return AuthResponse{}, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		s.recordLoginFailure(ctx, email, now)
		return AuthResponse{}, domain.ErrInvalidCredentials
	}
	if s.lockouts != nil {
		_ = s.lockouts.Clear(ctx, email)
	}

	return s.issueToken(user)
}

// GoogleAuth verifies the provider credential and finds or creates the matching
// account. First-time Google users get a random throwaway local password so the
// credential column is never a usable login path.
func (s *Service) GoogleAuth(ctx context.Context, req GoogleAuthRequest) (AuthResponse, error) {
	if req.Credential == "" {
		return AuthResponse{}, fmt.Errorf("%w: credential is required", domain.ErrInvalidInput)
	}

	identity, err := s.google.Verify(ctx, req.Credential)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("%w: google verification failed", domain.ErrUnauthorized)
	}

	email := normalizeEmail(identity.Email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		throwaway, genErr := randomSecret()
		if genErr != nil {
			return AuthResponse{}, fmt.Errorf("generate placeholder secret: %w", genErr)
		}
		passwordHash, hashErr := s.hasher.Hash(throwaway)
		if hashErr != nil {
			return AuthResponse{}, fmt.Errorf("hash placeholder secret: %w", hashErr)
		}
		user, err = s.users.Create(ctx, ports.CreateUserParams{
			Username:     identity.Name,
			Email:        email,
			PasswordHash: passwordHash,
			AuthProvider: domain.ProviderGoogle,
			CreatedAtUTC: s.nowFn(),
		})
		if err != nil {
			return AuthResponse{}, err
		}
		s.publishUserRegistered(ctx, user)
	}

	return s.issueToken(user)
}

// CurrentUser resolves a claim back to the stored identity.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *Service) issueToken(user domain.User) (AuthResponse, error) {
	now := s.nowFn()
	token, err := s.signer.Sign(ports.AuthClaims{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return AuthResponse{Token: token, User: user.Public()}, nil
}

func (s *Service) recordLoginFailure(ctx context.Context, email string, now time.Time) {
	if s.lockouts == nil {
		return
	}
	if _, err := s.lockouts.RecordFailure(ctx, email, now, s.cfg.FailedLoginThreshold, s.cfg.LockoutDuration); err != nil {
		slog.Default().WarnContext(ctx, "record login failure",
			"service", "workhub-api",
			"module", "application",
			"layer", "application",
			"operation", "login_lockout",
			"outcome", "failure",
			"error", err.Error(),
		)
	}
}

func (s *Service) publishUserRegistered(ctx context.Context, user domain.User) {
	if s.publisher == nil {
		return
	}
	payload, _ := json.Marshal(map[string]any{
		"user_id":       user.UserID.String(),
		"email":         user.Email,
		"auth_provider": user.AuthProvider,
		"registered_at": user.CreatedAt,
	})
	if err := s.publisher.Publish(ctx, ports.EventUserRegistered, payload, user.UserID.String()); err != nil {
		slog.Default().WarnContext(ctx, "publish user.registered failed",
			"service", "workhub-api",
			"module", "application",
			"layer", "application",
			"operation", "publish_event",
			"outcome", "failure",
			"error", err.Error(),
		)
	}
}

func randomSecret() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
