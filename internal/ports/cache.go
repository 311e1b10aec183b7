package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LockoutState mirrors the failed-login counter kept in the cache tier.
type LockoutState struct {
	FailedCount int
	LockedUntil *time.Time
}

// LockoutStore tracks failed login attempts per identifier with expiry handled
// by the store itself.
type LockoutStore interface {
	Get(ctx context.Context, key string) (LockoutState, error)
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int, lockoutWindow time.Duration) (LockoutState, error)
	Clear(ctx context.Context, key string) error
}

// UnreadCache is a read-through cache for per-user unread totals. A miss
// returns ok=false; Invalidate is called on every write that can change the
// count (send, mark-thread-read). Losing the cache is always safe.
type UnreadCache interface {
	Get(ctx context.Context, userID uuid.UUID) (int, bool, error)
	Set(ctx context.Context, userID uuid.UUID, count int, ttl time.Duration) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
