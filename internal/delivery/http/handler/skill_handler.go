package handler

import (
	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewSkillList(items))
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	s, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.NewSkillResponse(s))
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req dto.SkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Skill created", dto.NewSkillResponse(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.SkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), id, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Skill updated", dto.NewSkillResponse(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Skill deleted", nil)
}
