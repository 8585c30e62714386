package usecase

import (
	"context"
	"fmt"
	"time"

	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	StatsCacheKey = "stats:dashboard"
	topSkillLimit = 5
)

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DashboardStats is also the cached payload, hence the json tags.
type DashboardStats struct {
	Experience    []LabelCount `json:"experience"`
	TopSkills     []LabelCount `json:"top_skills"`
	ProjectStatus []LabelCount `json:"project_status"`
	GeneratedAt   time.Time    `json:"generated_at"`
}

type ReportUsecase interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
}

type Report struct {
	repo  repository.ReportRepository
	cache Cache
	ttl   time.Duration
	obs   CacheObserver
	log   logger.Logger
	now   func() time.Time
}

func NewReportUsecase(repo repository.ReportRepository, cache Cache, ttl time.Duration, obs CacheObserver, log logger.Logger) *Report {
	if obs == nil {
		obs = nopCacheObserver{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Report{repo: repo, cache: cache, ttl: ttl, obs: obs, log: log, now: time.Now}
}

// DashboardStats serves from cache when possible. Cache failures are logged
// and fall through to the database.
func (u *Report) DashboardStats(ctx context.Context) (DashboardStats, error) {
	if u.cache != nil {
		var cached DashboardStats
		hit, err := u.cache.GetJSON(ctx, StatsCacheKey, &cached)
		switch {
		case err != nil:
			u.obs.IncCache("error")
			u.log.Warn(ctx, "stats cache read failed", logger.Err(err))
		case hit:
			u.obs.IncCache("hit")
			return cached, nil
		default:
			u.obs.IncCache("miss")
		}
	}

	stats, err := u.load(ctx)
	if err != nil {
		return DashboardStats{}, wrapInternal(err)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, StatsCacheKey, stats, u.ttl); err != nil {
			u.log.Warn(ctx, "stats cache write failed", logger.Err(err))
		}
	}
	return stats, nil
}

func (u *Report) load(ctx context.Context) (DashboardStats, error) {
	var experience, topSkills, projectStatus []repository.LabelCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := u.repo.ExperienceDistribution(gctx)
		if err != nil {
			return fmt.Errorf("experience distribution: %w", err)
		}
		experience = rows
		return nil
	})
	g.Go(func() error {
		rows, err := u.repo.TopSkills(gctx, topSkillLimit)
		if err != nil {
			return fmt.Errorf("top skills: %w", err)
		}
		topSkills = rows
		return nil
	})
	g.Go(func() error {
		rows, err := u.repo.ProjectStatusCounts(gctx)
		if err != nil {
			return fmt.Errorf("project status: %w", err)
		}
		projectStatus = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		Experience:    toLabelCounts(experience),
		TopSkills:     toLabelCounts(topSkills),
		ProjectStatus: toLabelCounts(projectStatus),
		GeneratedAt:   u.now().UTC(),
	}, nil
}

func toLabelCounts(rows []repository.LabelCount) []LabelCount {
	out := make([]LabelCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, LabelCount{Label: r.Label, Count: r.Count})
	}
	return out
}

type nopCacheObserver struct{}

func (nopCacheObserver) IncCache(string) {}
