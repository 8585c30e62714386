package handler

import (
	"errors"

	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// bindBody decodes the JSON body into dst and runs its validate tags.
func bindBody(c fiber.Ctx, dst any) error {
	if err := c.Bind().Body(dst); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := dto.Validate(dst); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", dto.FieldErrors(err), err)
	}
	return nil
}

func paramID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrPersonnelNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Personnel not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill assignment not found", nil, err)
	case errors.Is(err, usecase.ErrRequirementNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project requirement not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNameTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Skill name already exists", nil, err)
	case errors.Is(err, usecase.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Email already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
	case errors.Is(err, usecase.ErrInvalidExperienceLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid experience level", nil, err)
	case errors.Is(err, usecase.ErrInvalidProjectStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project status", nil, err)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return middleware.NewAppError(fiber.StatusBadRequest, "End date must not be before start date", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
