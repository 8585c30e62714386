package handler

import (
	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc       usecase.ProjectUsecase
	matching usecase.MatchingUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase, matching usecase.MatchingUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc, matching: matching}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)

	grp.Get("/:id/requirements", h.ListRequirements)
	grp.Post("/:id/requirements", h.UpsertRequirement)
	grp.Delete("/:id/requirements/:skillId", h.RemoveRequirement)

	grp.Get("/:id/matches", h.Matches)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewProjectList(items))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewProjectResponse(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req dto.ProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Project created", dto.NewProjectResponse(created))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), id, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Project updated", dto.NewProjectResponse(updated))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Project deleted", nil)
}

func (h *ProjectHandler) ListRequirements(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListRequirements(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewRequirementList(items))
}

func (h *ProjectHandler) UpsertRequirement(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.RequirementRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	saved, err := h.uc.UpsertRequirement(c.Context(), id, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Requirement saved", dto.NewRequirementResponse(saved))
}

func (h *ProjectHandler) RemoveRequirement(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	skillID, err := paramID(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveRequirement(c.Context(), id, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Requirement removed", nil)
}

// Matches returns the personnel qualifying for every requirement of the
// project, or the gap report when nobody does.
func (h *ProjectHandler) Matches(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	m, err := h.matching.MatchProject(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := response.MessageOK
	if m.Result.NoRequirements() {
		msg = usecase.NoRequirementsMessage
	}
	return response.OK(c, msg, dto.NewMatchResponse(m))
}
