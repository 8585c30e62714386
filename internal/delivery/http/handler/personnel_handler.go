package handler

import (
	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PersonnelHandler struct {
	uc          usecase.PersonnelUsecase
	assignments usecase.AssignmentUsecase
}

func NewPersonnelHandler(uc usecase.PersonnelUsecase, assignments usecase.AssignmentUsecase) *PersonnelHandler {
	return &PersonnelHandler{uc: uc, assignments: assignments}
}

func (h *PersonnelHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/personnel")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)

	grp.Get("/:id/skills", h.ListSkills)
	grp.Post("/:id/skills", h.AssignSkill)
	grp.Delete("/:id/skills/:skillId", h.UnassignSkill)
}

func (h *PersonnelHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewPersonnelList(items))
}

func (h *PersonnelHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewPersonnelResponse(p))
}

func (h *PersonnelHandler) Create(c fiber.Ctx) error {
	var req dto.PersonnelRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Personnel created", dto.NewPersonnelResponse(created))
}

func (h *PersonnelHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.PersonnelRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), id, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Personnel updated", dto.NewPersonnelResponse(updated))
}

func (h *PersonnelHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Personnel deleted", nil)
}

func (h *PersonnelHandler) ListSkills(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.assignments.ListSkills(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewAssignmentList(items))
}

func (h *PersonnelHandler) AssignSkill(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.AssignSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	saved, err := h.assignments.Assign(c.Context(), id, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Skill assigned", dto.NewAssignmentResponse(saved))
}

func (h *PersonnelHandler) UnassignSkill(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	skillID, err := paramID(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.assignments.Unassign(c.Context(), id, skillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Skill removed", nil)
}
