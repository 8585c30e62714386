package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-matrix/internal/domain/skill"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

type SkillInput struct {
	Name        string
	Category    string
	Description string
}

type SkillUsecase interface {
	List(ctx context.Context) ([]skill.Skill, error)
	Get(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	Create(ctx context.Context, in SkillInput) (skill.Skill, error)
	Update(ctx context.Context, id uuid.UUID, in SkillInput) (skill.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Skill struct {
	repo repository.SkillRepository
	feed *ChangeFeed
}

func NewSkillUsecase(repo repository.SkillRepository, feed *ChangeFeed) *Skill {
	return &Skill{repo: repo, feed: feed}
}

func (u *Skill) List(ctx context.Context) ([]skill.Skill, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return items, nil
}

func (u *Skill) Get(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return skill.Skill{}, mapSkillErr(err)
	}
	return s, nil
}

func (u *Skill) Create(ctx context.Context, in SkillInput) (skill.Skill, error) {
	s, err := in.normalize()
	if err != nil {
		return skill.Skill{}, err
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return skill.Skill{}, mapSkillErr(err)
	}

	u.feed.publish(ctx, change{source: SourceSkills, stats: true})
	return created, nil
}

func (u *Skill) Update(ctx context.Context, id uuid.UUID, in SkillInput) (skill.Skill, error) {
	s, err := in.normalize()
	if err != nil {
		return skill.Skill{}, err
	}
	s.ID = id

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return skill.Skill{}, mapSkillErr(err)
	}

	// Skill names appear in requirement listings and gap narratives.
	u.feed.publish(ctx, change{source: SourceSkills, stats: true, matchInputs: true})
	return updated, nil
}

// Delete removes the skill along with every assignment and requirement that
// references it.
func (u *Skill) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapSkillErr(err)
	}
	u.feed.publish(ctx, change{source: SourceSkills, stats: true, matchInputs: true})
	return nil
}

func (in SkillInput) normalize() (skill.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	return skill.Skill{
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
	}, nil
}

func mapSkillErr(err error) error {
	switch {
	case errors.Is(err, skill.ErrNotFound):
		return ErrSkillNotFound
	case errors.Is(err, skill.ErrNameTaken):
		return ErrSkillNameTaken
	default:
		return wrapInternal(err)
	}
}
