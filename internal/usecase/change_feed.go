package usecase

import (
	"context"

	"skill-matrix/internal/pkg/logger"

	"github.com/google/uuid"
)

const (
	SourceSkills       = "skills"
	SourcePersonnel    = "personnel"
	SourceAssignments  = "assignments"
	SourceProjects     = "projects"
	SourceRequirements = "requirements"
)

// ChangeFeed is called after every successful write. It drops the cached
// dashboard stats and, when the write can change a match result, notifies
// live clients. Both steps are best effort.
type ChangeFeed struct {
	cache    Cache
	notifier ChangeNotifier
	log      logger.Logger
}

func NewChangeFeed(cache Cache, notifier ChangeNotifier, log logger.Logger) *ChangeFeed {
	if log == nil {
		log = logger.NewNop()
	}
	return &ChangeFeed{cache: cache, notifier: notifier, log: log}
}

type change struct {
	source      string
	projectID   uuid.UUID
	stats       bool
	matchInputs bool
}

func (f *ChangeFeed) publish(ctx context.Context, c change) {
	if f == nil {
		return
	}

	if c.stats && f.cache != nil {
		if err := f.cache.Delete(ctx, StatsCacheKey); err != nil {
			f.log.Warn(ctx, "stats cache invalidation failed", logger.String("source", c.source), logger.Err(err))
		}
	}

	if c.matchInputs && f.notifier != nil {
		f.notifier.NotifyMatchInputsChanged(c.source, c.projectID)
	}
}
