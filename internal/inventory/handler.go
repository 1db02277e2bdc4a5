package inventory

import (
	"errors"
	"strings"

	"printco-backend/internal/calc"
	"printco-backend/internal/models"
	"printco-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ProductRequest struct {
	Name             string                 `json:"name"`
	Category         models.ProductCategory `json:"category"`
	Price            float64                `json:"price"`
	Cost             float64                `json:"cost"`
	RequiredSupplies map[string]float64     `json:"requiredSupplies"`
	Description      string                 `json:"description"`
}

type ProductResponse struct {
	models.Product
	CategoryName string  `json:"categoryName"`
	ProfitMargin float64 `json:"profitMargin"`
}

type SupplyResponse struct {
	models.Supply
	CategoryName string `json:"categoryName"`
	Alerting     bool   `json:"alerting"`
}

type SetStockRequest struct {
	CurrentStock float64 `json:"currentStock"`
}

type AdjustStockRequest struct {
	Delta float64 `json:"delta"`
}

func (r ProductRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "El nombre es obligatorio")
	}
	if r.Price <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "El precio debe ser mayor a 0")
	}
	if r.Cost < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "El costo no puede ser negativo")
	}
	for supplyID, qty := range r.RequiredSupplies {
		if qty <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cantidad de insumo inválida para "+supplyID)
		}
	}
	return nil
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Product:      p,
		CategoryName: p.Category.DisplayName(),
		ProfitMargin: calc.ProfitMargin(p.Price, p.Cost),
	}
}

// GET /api/products
func ListProductsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := st.State()
		category := c.Query("category")

		res := make([]ProductResponse, 0, len(state.Products))
		for _, p := range state.Products {
			if category != "" && string(p.Category) != category {
				continue
			}
			res = append(res, toProductResponse(p))
		}
		return c.JSON(res)
	}
}

// POST /api/products
func CreateProductHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if err := body.validate(); err != nil {
			return err
		}

		supplies := body.RequiredSupplies
		if supplies == nil {
			supplies = map[string]float64{}
		}
		product, err := st.SaveProduct(models.Product{
			Name:             strings.TrimSpace(body.Name),
			Category:         body.Category,
			Price:            body.Price,
			Cost:             body.Cost,
			RequiredSupplies: supplies,
			Description:      body.Description,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
	}
}

// PUT /api/products/:id
func UpdateProductHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := st.State().FindProduct(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if err := body.validate(); err != nil {
			return err
		}

		supplies := body.RequiredSupplies
		if supplies == nil {
			supplies = map[string]float64{}
		}
		product, err := st.SaveProduct(models.Product{
			ID:               id,
			Name:             strings.TrimSpace(body.Name),
			Category:         body.Category,
			Price:            body.Price,
			Cost:             body.Cost,
			RequiredSupplies: supplies,
			Description:      body.Description,
		})
		if err != nil {
			return err
		}
		return c.JSON(toProductResponse(product))
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.DeleteProduct(c.Params("id")); err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
			}
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/supplies
func ListSuppliesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := st.State()
		category := c.Query("category")

		res := make([]SupplyResponse, 0, len(state.Supplies))
		for _, s := range state.Supplies {
			if category != "" && string(s.Category) != category {
				continue
			}
			res = append(res, SupplyResponse{
				Supply:       s,
				CategoryName: s.Category.DisplayName(),
				Alerting:     s.CurrentStock <= s.MinStock,
			})
		}
		return c.JSON(res)
	}
}

// PUT /api/supplies/:id/stock
// Edición manual: setea el stock a un valor absoluto.
func SetSupplyStockHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		supply, err := st.SetSupplyStock(c.Params("id"), body.CurrentStock)
		if err != nil {
			if errors.Is(err, store.ErrNegativeStock) {
				return fiber.NewError(fiber.StatusBadRequest, "El stock no puede ser negativo")
			}
			if errors.Is(err, store.ErrSupplyNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Insumo no encontrado")
			}
			return err
		}
		return c.JSON(supply)
	}
}

// POST /api/supplies/:id/adjust
// Ajuste rápido +/-; el stock nunca baja de cero.
func AdjustSupplyStockHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdjustStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		supply, err := st.AdjustSupplyStock(c.Params("id"), body.Delta)
		if err != nil {
			if errors.Is(err, store.ErrSupplyNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Insumo no encontrado")
			}
			return err
		}
		return c.JSON(supply)
	}
}

// GET /api/stock-alerts?limit=N
// Alertas ordenadas: críticas primero, después por menor stock.
func StockAlertsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alerts := calc.StockAlerts(st.State().Supplies)
		if alerts == nil {
			alerts = []calc.StockAlert{}
		}

		if limit := c.QueryInt("limit"); limit > 0 && limit < len(alerts) {
			alerts = alerts[:limit]
		}
		return c.JSON(alerts)
	}
}
