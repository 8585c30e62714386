package usecase

import (
	"context"
	"errors"

	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/domain/personnel"
	"skill-matrix/internal/domain/skill"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

type AssignSkillInput struct {
	SkillID uuid.UUID
	Level   string
}

type AssignmentUsecase interface {
	ListSkills(ctx context.Context, personID uuid.UUID) ([]personnel.Assignment, error)
	Assign(ctx context.Context, personID uuid.UUID, in AssignSkillInput) (personnel.Assignment, error)
	Unassign(ctx context.Context, personID, skillID uuid.UUID) error
}

type Assignment struct {
	assignments repository.AssignmentRepository
	people      repository.PersonnelRepository
	skills      repository.SkillRepository
	feed        *ChangeFeed
}

func NewAssignmentUsecase(
	assignments repository.AssignmentRepository,
	people repository.PersonnelRepository,
	skills repository.SkillRepository,
	feed *ChangeFeed,
) *Assignment {
	return &Assignment{assignments: assignments, people: people, skills: skills, feed: feed}
}

func (u *Assignment) ListSkills(ctx context.Context, personID uuid.UUID) ([]personnel.Assignment, error) {
	if err := u.requirePerson(ctx, personID); err != nil {
		return nil, err
	}

	items, err := u.assignments.ListByPerson(ctx, personID)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return items, nil
}

// Assign upserts the person's level for a skill. The label is stored in its
// canonical spelling so the matcher never sees a variant.
func (u *Assignment) Assign(ctx context.Context, personID uuid.UUID, in AssignSkillInput) (personnel.Assignment, error) {
	if in.SkillID == uuid.Nil {
		return personnel.Assignment{}, ErrInvalidInput
	}
	level, ok := matching.ParseLevel(in.Level)
	if !ok {
		return personnel.Assignment{}, ErrInvalidProficiencyLevel
	}

	if err := u.requirePerson(ctx, personID); err != nil {
		return personnel.Assignment{}, err
	}
	exists, err := u.skills.ExistsByID(ctx, in.SkillID)
	if err != nil {
		return personnel.Assignment{}, wrapInternal(err)
	}
	if !exists {
		return personnel.Assignment{}, ErrSkillNotFound
	}

	saved, err := u.assignments.Upsert(ctx, personnel.Assignment{
		PersonID: personID,
		SkillID:  in.SkillID,
		Level:    level.String(),
	})
	if err != nil {
		return personnel.Assignment{}, mapAssignmentErr(err)
	}

	u.feed.publish(ctx, change{source: SourceAssignments, stats: true, matchInputs: true})
	return saved, nil
}

func (u *Assignment) Unassign(ctx context.Context, personID, skillID uuid.UUID) error {
	if err := u.assignments.Delete(ctx, personID, skillID); err != nil {
		return mapAssignmentErr(err)
	}
	u.feed.publish(ctx, change{source: SourceAssignments, stats: true, matchInputs: true})
	return nil
}

func (u *Assignment) requirePerson(ctx context.Context, personID uuid.UUID) error {
	exists, err := u.people.ExistsByID(ctx, personID)
	if err != nil {
		return wrapInternal(err)
	}
	if !exists {
		return ErrPersonnelNotFound
	}
	return nil
}

func mapAssignmentErr(err error) error {
	switch {
	case errors.Is(err, personnel.ErrNotFound):
		return ErrPersonnelNotFound
	case errors.Is(err, skill.ErrNotFound):
		return ErrSkillNotFound
	case errors.Is(err, personnel.ErrAssignmentNotFound):
		return ErrAssignmentNotFound
	default:
		return wrapInternal(err)
	}
}
