package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/workhub/workhub/internal/domain"
	"github.com/workhub/workhub/internal/ports"
)

// Config carries the tunables the service needs at runtime.
type Config struct {
	TokenTTL             time.Duration
	FailedLoginThreshold int
	LockoutDuration      time.Duration
	UnreadCacheTTL       time.Duration
}

// Dependencies wires every port the service consumes. Optional fields
// (Notifier, UnreadCache) degrade to no-ops when nil so tests and trimmed
// deployments stay simple.
type Dependencies struct {
	Config Config

	Users      ports.UserRepository
	Messages   ports.MessageRepository
	Notes      ports.NoteRepository
	Tasks      ports.TaskRepository
	Companies  ports.CompanyRepository
	Categories ports.CategoryRepository
	Skills     ports.SkillRepository
	JobPosts   ports.JobPostRepository

	Lockouts    ports.LockoutStore
	UnreadCache ports.UnreadCache
	Publisher   ports.EventPublisher
	Notifier    ports.LiveNotifier

	Hasher         ports.PasswordHasher
	TokenSigner    ports.TokenSigner
	GoogleVerifier ports.GoogleVerifier

	NowFn func() time.Time
}

// Service implements every use-case behind the HTTP and WebSocket surfaces.
type Service struct {
	cfg         Config
	users       ports.UserRepository
	messages    ports.MessageRepository
	notes       ports.NoteRepository
	tasks       ports.TaskRepository
	companies   ports.CompanyRepository
	categories  ports.CategoryRepository
	skills      ports.SkillRepository
	jobPosts    ports.JobPostRepository
	lockouts    ports.LockoutStore
	unreadCache ports.UnreadCache
	publisher   ports.EventPublisher
	notifier    ports.LiveNotifier
	hasher      ports.PasswordHasher
	signer      ports.TokenSigner
	google      ports.GoogleVerifier
	nowFn       func() time.Time
}

func NewService(deps Dependencies) *Service {
	nowFn := deps.NowFn
	if nowFn == nil {
		nowFn = func() time.Time { return time.Now().UTC() }
	}
	cfg := deps.Config
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}
	if cfg.UnreadCacheTTL <= 0 {
		cfg.UnreadCacheTTL = time.Minute
	}
	return &Service{
		cfg:         cfg,
		users:       deps.Users,
		messages:    deps.Messages,
		notes:       deps.Notes,
		tasks:       deps.Tasks,
		companies:   deps.Companies,
		categories:  deps.Categories,
		skills:      deps.Skills,
		jobPosts:    deps.JobPosts,
		lockouts:    deps.Lockouts,
		unreadCache: deps.UnreadCache,
		publisher:   deps.Publisher,
		notifier:    deps.Notifier,
		hasher:      deps.Hasher,
		signer:      deps.TokenSigner,
		google:      deps.GoogleVerifier,
		nowFn:       nowFn,
	}
}

// ValidateToken is the single gatekeeping policy shared by the request channel
// and the connection handshake.
func (s *Service) ValidateToken(_ context.Context, raw string) (ports.AuthClaims, error) {
	claims, err := s.signer.ParseAndValidate(raw)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return ports.AuthClaims{}, domain.ErrTokenExpired
		}
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
