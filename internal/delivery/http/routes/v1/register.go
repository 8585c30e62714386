package v1

import (
	"skill-matrix/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Skill     *handler.SkillHandler
	Personnel *handler.PersonnelHandler
	Project   *handler.ProjectHandler
	Report    *handler.ReportHandler

	// RequireAuth guards everything outside /auth. Nil leaves routes open.
	RequireAuth fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	protected := r
	if h.RequireAuth != nil {
		protected = r.Group("", h.RequireAuth)
	}

	RegisterCatalog(protected, h.Skill)
	RegisterPersonnel(protected, h.Personnel)
	RegisterProjects(protected, h.Project)
	RegisterReports(protected, h.Report)
}
