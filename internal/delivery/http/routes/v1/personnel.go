package v1

import (
	"skill-matrix/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterPersonnel(r fiber.Router, personnelHandler *handler.PersonnelHandler) {
	if r == nil {
		return
	}
	if personnelHandler == nil {
		return
	}

	personnelHandler.RegisterRoutes(r)
}
