package main

import (
	"log"
	"strings"

	"printco-backend/internal/backup"
	"printco-backend/internal/cashregister"
	"printco-backend/internal/config"
	"printco-backend/internal/database"
	"printco-backend/internal/expense"
	"printco-backend/internal/inventory"
	"printco-backend/internal/reports"
	"printco-backend/internal/sales"
	"printco-backend/internal/settings"
	"printco-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)
	defer database.Store.Close()

	st, err := store.New(database.Store)
	if err != nil {
		log.Fatalf("No se pudo cargar el snapshot: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Catálogo de productos
	api.Get("/products", inventory.ListProductsHandler(st))
	api.Post("/products", inventory.CreateProductHandler(st))
	api.Put("/products/:id", inventory.UpdateProductHandler(st))
	api.Delete("/products/:id", inventory.DeleteProductHandler(st))

	// Stock de insumos
	api.Get("/supplies", inventory.ListSuppliesHandler(st))
	api.Put("/supplies/:id/stock", inventory.SetSupplyStockHandler(st))
	api.Post("/supplies/:id/adjust", inventory.AdjustSupplyStockHandler(st))
	api.Get("/stock-alerts", inventory.StockAlertsHandler(st))

	// Ventas
	api.Post("/sales/quote", sales.QuoteHandler(st))
	api.Post("/sales", sales.CreateSaleHandler(st))
	api.Get("/sales", sales.ListSalesHandler(st))
	api.Delete("/sales/:id", sales.DeleteSaleHandler(st))

	// Egresos
	api.Post("/expenses", expense.SaveExpenseHandler(st))
	api.Get("/expenses", expense.ListExpensesHandler(st))
	api.Delete("/expenses/:id", expense.DeleteExpenseHandler(st))

	// Cierre de caja
	api.Get("/cash-register/day", cashregister.DaySummaryHandler(st))
	api.Post("/cash-register/close", cashregister.CloseHandler(st))
	api.Get("/cash-register/closures", cashregister.ClosuresHandler(st))

	// Reportes
	api.Get("/reports", reports.SalesReportHandler(st))
	api.Get("/reports/export", reports.ExportReportHandler(st))
	api.Get("/dashboard", reports.DashboardHandler(st))

	// Configuración
	api.Get("/settings", settings.GetSettingsHandler(st))
	api.Put("/settings", settings.UpdateSettingsHandler(st))

	// Backup
	api.Get("/backup/export", backup.ExportHandler(st))
	api.Post("/backup/import", backup.ImportHandler(st))
	api.Post("/backup/reset", backup.ResetHandler(st))

	log.Println("Servidor escuchando en puerto:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
