package v1

import (
	"skill-matrix/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// RegisterProjects mounts project CRUD, requirements and the matches endpoint.
func RegisterProjects(r fiber.Router, projectHandler *handler.ProjectHandler) {
	if r == nil {
		return
	}
	if projectHandler == nil {
		return
	}

	projectHandler.RegisterRoutes(r)
}

func RegisterReports(r fiber.Router, reportHandler *handler.ReportHandler) {
	if r == nil {
		return
	}
	if reportHandler == nil {
		return
	}

	reportHandler.RegisterRoutes(r)
}
