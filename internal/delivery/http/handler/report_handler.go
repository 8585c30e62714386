package handler

import (
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReportHandler struct {
	uc usecase.ReportUsecase
}

func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/reports/stats", h.Stats)
}

func (h *ReportHandler) Stats(c fiber.Ctx) error {
	stats, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, stats)
}
