package v1

import (
	"skill-matrix/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterCatalog(r fiber.Router, skillHandler *handler.SkillHandler) {
	if r == nil {
		return
	}
	if skillHandler == nil {
		return
	}

	skillHandler.RegisterRoutes(r)
}
