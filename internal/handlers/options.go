package handlers

import (
	"cardcopy/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Options lists the choices the form offers.
func Options(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"platforms": models.Platforms,
		"audiences": models.Audiences,
		"languages": models.Languages,
		"tones":     models.Tones,
	})
}
