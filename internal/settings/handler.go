package settings

import (
	"strings"

	"printco-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type UpdateSettingsRequest struct {
	BusinessName      *string  `json:"businessName"`
	Currency          *string  `json:"currency"`
	TaxRate           *float64 `json:"taxRate"`
	LowStockThreshold *float64 `json:"lowStockThreshold"`
}

// GET /api/settings
func GetSettingsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.State().Settings)
	}
}

// PUT /api/settings
// Actualización parcial: solo pisa los campos presentes.
func UpdateSettingsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateSettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		settings := st.State().Settings
		if body.BusinessName != nil {
			name := strings.TrimSpace(*body.BusinessName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre del negocio no puede quedar vacío")
			}
			settings.BusinessName = name
		}
		if body.Currency != nil {
			settings.Currency = *body.Currency
		}
		if body.TaxRate != nil {
			if *body.TaxRate < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "La tasa de impuesto no puede ser negativa")
			}
			settings.TaxRate = *body.TaxRate
		}
		if body.LowStockThreshold != nil {
			if *body.LowStockThreshold < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "El umbral de stock bajo no puede ser negativo")
			}
			settings.LowStockThreshold = *body.LowStockThreshold
		}

		if err := st.UpdateSettings(settings); err != nil {
			return err
		}
		return c.JSON(settings)
	}
}
