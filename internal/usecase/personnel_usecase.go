package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-matrix/internal/domain/personnel"
	"skill-matrix/internal/repository"
	"skill-matrix/internal/usecase/validation"

	"github.com/google/uuid"
)

type PersonnelInput struct {
	Name            string
	Email           string
	Role            string
	ExperienceLevel string
}

type PersonnelUsecase interface {
	List(ctx context.Context) ([]personnel.Personnel, error)
	Get(ctx context.Context, id uuid.UUID) (personnel.Personnel, error)
	Create(ctx context.Context, in PersonnelInput) (personnel.Personnel, error)
	Update(ctx context.Context, id uuid.UUID, in PersonnelInput) (personnel.Personnel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Personnel struct {
	repo repository.PersonnelRepository
	feed *ChangeFeed
}

func NewPersonnelUsecase(repo repository.PersonnelRepository, feed *ChangeFeed) *Personnel {
	return &Personnel{repo: repo, feed: feed}
}

func (u *Personnel) List(ctx context.Context) ([]personnel.Personnel, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return items, nil
}

func (u *Personnel) Get(ctx context.Context, id uuid.UUID) (personnel.Personnel, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return personnel.Personnel{}, mapPersonnelErr(err)
	}
	return p, nil
}

func (u *Personnel) Create(ctx context.Context, in PersonnelInput) (personnel.Personnel, error) {
	p, err := in.normalize()
	if err != nil {
		return personnel.Personnel{}, err
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return personnel.Personnel{}, mapPersonnelErr(err)
	}

	// A person without skills cannot change any match result.
	u.feed.publish(ctx, change{source: SourcePersonnel, stats: true})
	return created, nil
}

func (u *Personnel) Update(ctx context.Context, id uuid.UUID, in PersonnelInput) (personnel.Personnel, error) {
	p, err := in.normalize()
	if err != nil {
		return personnel.Personnel{}, err
	}
	p.ID = id

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return personnel.Personnel{}, mapPersonnelErr(err)
	}

	u.feed.publish(ctx, change{source: SourcePersonnel, stats: true, matchInputs: true})
	return updated, nil
}

func (u *Personnel) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapPersonnelErr(err)
	}
	u.feed.publish(ctx, change{source: SourcePersonnel, stats: true, matchInputs: true})
	return nil
}

func (in PersonnelInput) normalize() (personnel.Personnel, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || !validation.Email(email) {
		return personnel.Personnel{}, ErrInvalidInput
	}

	level, ok := personnel.ParseExperienceLevel(in.ExperienceLevel)
	if !ok {
		return personnel.Personnel{}, ErrInvalidExperienceLevel
	}

	return personnel.Personnel{
		Name:            name,
		Email:           email,
		Role:            strings.TrimSpace(in.Role),
		ExperienceLevel: level,
	}, nil
}

func mapPersonnelErr(err error) error {
	switch {
	case errors.Is(err, personnel.ErrNotFound):
		return ErrPersonnelNotFound
	case errors.Is(err, personnel.ErrEmailTaken):
		return ErrEmailTaken
	default:
		return wrapInternal(err)
	}
}
