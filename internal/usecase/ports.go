package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cache is a JSON key/value store. Implementations may be unavailable; callers
// treat every error as a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ChangeNotifier fans out "match inputs changed" events to live clients.
// projectID is uuid.Nil when the change can affect every project.
type ChangeNotifier interface {
	NotifyMatchInputsChanged(source string, projectID uuid.UUID)
}

type MatchObserver interface {
	ObserveMatch(outcome string, matched, gaps int, dur time.Duration)
	IncLabelIssue(source string)
}

type CacheObserver interface {
	IncCache(result string)
}
