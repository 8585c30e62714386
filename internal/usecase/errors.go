package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrSkillNotFound       = errors.New("skill not found")
	ErrSkillNameTaken      = errors.New("skill already exists")
	ErrPersonnelNotFound   = errors.New("personnel not found")
	ErrEmailTaken          = errors.New("email already exists")
	ErrProjectNotFound     = errors.New("project not found")
	ErrAssignmentNotFound  = errors.New("skill assignment not found")
	ErrRequirementNotFound = errors.New("project requirement not found")

	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrInvalidExperienceLevel  = errors.New("invalid experience level")
	ErrInvalidProjectStatus    = errors.New("invalid project status")
	ErrInvalidDateRange        = errors.New("end date precedes start date")

	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// wrapInternal marks err as ErrInternal while keeping the cause for logs.
func wrapInternal(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
