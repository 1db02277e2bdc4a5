package backup

import (
	"time"

	"printco-backend/internal/dateutil"
	"printco-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/backup/export
// Descarga el snapshot completo como JSON indentado.
func ExportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := st.Export()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo exportar los datos")
		}

		filename := "printco_backup_" + dateutil.FormatDate(time.Now()) + ".json"
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(data)
	}
}

// POST /api/backup/import
// El cuerpo es el snapshot exportado. La validación es campo por campo: una
// lista que no sea un array JSON se reemplaza por el valor por defecto,
// JSON malformado es 400, nunca un crash.
func ImportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := st.Import(c.Body())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Formato de datos inválido")
		}
		return c.JSON(state)
	}
}

// POST /api/backup/reset
// Borra el snapshot persistido y vuelve al catálogo inicial.
func ResetHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.Reset(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo reiniciar los datos")
		}
		return c.JSON(st.State())
	}
}
