package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/domain/project"
	"skill-matrix/internal/domain/skill"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

type ProjectInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string
}

type RequirementInput struct {
	SkillID  uuid.UUID
	MinLevel string
}

type ProjectUsecase interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id uuid.UUID) (project.Project, error)
	Create(ctx context.Context, in ProjectInput) (project.Project, error)
	Update(ctx context.Context, id uuid.UUID, in ProjectInput) (project.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListRequirements(ctx context.Context, projectID uuid.UUID) ([]project.Requirement, error)
	UpsertRequirement(ctx context.Context, projectID uuid.UUID, in RequirementInput) (project.Requirement, error)
	RemoveRequirement(ctx context.Context, projectID, skillID uuid.UUID) error
}

type Project struct {
	projects     repository.ProjectRepository
	requirements repository.RequirementRepository
	skills       repository.SkillRepository
	feed         *ChangeFeed
}

func NewProjectUsecase(
	projects repository.ProjectRepository,
	requirements repository.RequirementRepository,
	skills repository.SkillRepository,
	feed *ChangeFeed,
) *Project {
	return &Project{projects: projects, requirements: requirements, skills: skills, feed: feed}
}

func (u *Project) List(ctx context.Context) ([]project.Project, error) {
	items, err := u.projects.List(ctx)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return items, nil
}

func (u *Project) Get(ctx context.Context, id uuid.UUID) (project.Project, error) {
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, mapProjectErr(err)
	}
	return p, nil
}

func (u *Project) Create(ctx context.Context, in ProjectInput) (project.Project, error) {
	p, err := in.normalize()
	if err != nil {
		return project.Project{}, err
	}

	created, err := u.projects.Create(ctx, p)
	if err != nil {
		return project.Project{}, wrapInternal(err)
	}

	u.feed.publish(ctx, change{source: SourceProjects, projectID: created.ID, stats: true})
	return created, nil
}

func (u *Project) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (project.Project, error) {
	p, err := in.normalize()
	if err != nil {
		return project.Project{}, err
	}
	p.ID = id

	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return project.Project{}, mapProjectErr(err)
	}

	u.feed.publish(ctx, change{source: SourceProjects, projectID: id, stats: true})
	return updated, nil
}

func (u *Project) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.projects.Delete(ctx, id); err != nil {
		return mapProjectErr(err)
	}
	u.feed.publish(ctx, change{source: SourceProjects, projectID: id, stats: true})
	return nil
}

func (u *Project) ListRequirements(ctx context.Context, projectID uuid.UUID) ([]project.Requirement, error) {
	if err := u.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	items, err := u.requirements.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return items, nil
}

// UpsertRequirement sets the project's minimum level for a skill, replacing
// any previous minimum for the same skill.
func (u *Project) UpsertRequirement(ctx context.Context, projectID uuid.UUID, in RequirementInput) (project.Requirement, error) {
	if in.SkillID == uuid.Nil {
		return project.Requirement{}, ErrInvalidInput
	}
	level, ok := matching.ParseLevel(in.MinLevel)
	if !ok {
		return project.Requirement{}, ErrInvalidProficiencyLevel
	}

	if err := u.requireProject(ctx, projectID); err != nil {
		return project.Requirement{}, err
	}
	exists, err := u.skills.ExistsByID(ctx, in.SkillID)
	if err != nil {
		return project.Requirement{}, wrapInternal(err)
	}
	if !exists {
		return project.Requirement{}, ErrSkillNotFound
	}

	saved, err := u.requirements.Upsert(ctx, project.Requirement{
		ProjectID: projectID,
		SkillID:   in.SkillID,
		MinLevel:  level.String(),
	})
	if err != nil {
		return project.Requirement{}, mapProjectErr(err)
	}

	u.feed.publish(ctx, change{source: SourceRequirements, projectID: projectID, matchInputs: true})
	return saved, nil
}

func (u *Project) RemoveRequirement(ctx context.Context, projectID, skillID uuid.UUID) error {
	if err := u.requirements.Delete(ctx, projectID, skillID); err != nil {
		return mapProjectErr(err)
	}
	u.feed.publish(ctx, change{source: SourceRequirements, projectID: projectID, matchInputs: true})
	return nil
}

func (u *Project) requireProject(ctx context.Context, id uuid.UUID) error {
	exists, err := u.projects.ExistsByID(ctx, id)
	if err != nil {
		return wrapInternal(err)
	}
	if !exists {
		return ErrProjectNotFound
	}
	return nil
}

func (in ProjectInput) normalize() (project.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return project.Project{}, ErrInvalidInput
	}

	status, ok := project.ParseStatus(in.Status)
	if !ok {
		return project.Project{}, ErrInvalidProjectStatus
	}

	start, end := truncateDate(in.StartDate), truncateDate(in.EndDate)
	if start != nil && end != nil && end.Before(*start) {
		return project.Project{}, ErrInvalidDateRange
	}

	return project.Project{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		StartDate:   start,
		EndDate:     end,
		Status:      status,
	}, nil
}

func truncateDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func mapProjectErr(err error) error {
	switch {
	case errors.Is(err, project.ErrNotFound):
		return ErrProjectNotFound
	case errors.Is(err, project.ErrRequirementNotFound):
		return ErrRequirementNotFound
	case errors.Is(err, skill.ErrNotFound):
		return ErrSkillNotFound
	default:
		return wrapInternal(err)
	}
}
