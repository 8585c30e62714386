package usecase

import (
	"context"
	"fmt"
	"time"

	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/domain/project"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// NoRequirementsMessage is shown when a project has nothing to match against.
const NoRequirementsMessage = "No skills required for this project yet."

type ProjectMatch struct {
	Project project.Project
	Result  matching.Result
}

type MatchingUsecase interface {
	MatchProject(ctx context.Context, projectID uuid.UUID) (ProjectMatch, error)
}

type Matching struct {
	projects     repository.ProjectRepository
	requirements repository.RequirementRepository
	roster       repository.AssignmentRepository
	obs          MatchObserver
	log          logger.Logger
	now          func() time.Time
}

func NewMatchingUsecase(
	projects repository.ProjectRepository,
	requirements repository.RequirementRepository,
	roster repository.AssignmentRepository,
	obs MatchObserver,
	log logger.Logger,
) *Matching {
	if obs == nil {
		obs = nopMatchObserver{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Matching{
		projects:     projects,
		requirements: requirements,
		roster:       roster,
		obs:          obs,
		log:          log,
		now:          time.Now,
	}
}

// MatchProject checks the project exists, reads its requirements and the
// whole roster, and evaluates them. The roster is read fresh on every call.
func (u *Matching) MatchProject(ctx context.Context, projectID uuid.UUID) (ProjectMatch, error) {
	start := u.now()

	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return ProjectMatch{}, mapProjectErr(err)
	}

	var (
		reqRows    []matching.RequirementRow
		rosterRows []matching.RosterRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := u.requirements.RequirementRows(gctx, projectID)
		if err != nil {
			return fmt.Errorf("load requirements: %w", err)
		}
		reqRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := u.roster.RosterRows(gctx)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		rosterRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProjectMatch{}, wrapInternal(err)
	}

	res := matching.Match(reqRows, rosterRows)

	for _, is := range res.Issues {
		fields := []logger.Field{
			logger.Stringer("project_id", projectID),
			logger.String("source", string(is.Source)),
			logger.String("kind", string(is.Kind)),
			logger.Stringer("skill_id", is.SkillID),
			logger.String("label", is.Label),
		}
		if is.PersonID != uuid.Nil {
			fields = append(fields, logger.Stringer("person_id", is.PersonID))
		}
		u.log.Warn(ctx, "unusable match input row", fields...)
		u.obs.IncLabelIssue(string(is.Source))
	}

	dur := u.now().Sub(start)
	u.obs.ObserveMatch(string(res.Outcome), len(res.Matched), len(res.Gaps), dur)
	u.log.Debug(ctx, "project matched",
		logger.Stringer("project_id", projectID),
		logger.String("outcome", string(res.Outcome)),
		logger.Int("requirements", len(res.Requirements)),
		logger.Int("matched", len(res.Matched)),
		logger.Int("gaps", len(res.Gaps)),
		logger.Int("roster_rows", len(rosterRows)),
	)

	return ProjectMatch{Project: p, Result: res}, nil
}

type nopMatchObserver struct{}

func (nopMatchObserver) ObserveMatch(string, int, int, time.Duration) {}
func (nopMatchObserver) IncLabelIssue(string)                         {}
