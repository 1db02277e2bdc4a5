package sales

import (
	"errors"

	"printco-backend/internal/calc"
	"printco-backend/internal/models"
	"printco-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type QuoteRequest struct {
	Items []store.SaleLine `json:"items"`
}

type QuoteResponse struct {
	Items      []calc.CartItem `json:"items"`
	Totals     calc.CartTotals `json:"totals"`
	StockCheck calc.StockCheck `json:"stockCheck"`
}

type CreateSaleRequest struct {
	Items         []store.SaleLine     `json:"items"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

type ListSalesResponse struct {
	Sales []models.Sale `json:"sales"`
	Total float64       `json:"total"`
}

func validPaymentMethod(m models.PaymentMethod) bool {
	switch m {
	case models.PaymentCash, models.PaymentTransfer, models.PaymentCard:
		return true
	}
	return false
}

// POST /api/sales/quote
// Cotiza el carrito y verifica stock sin mutar nada.
func QuoteHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body QuoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		state := st.State()
		items, err := store.BuildCart(state, body.Items)
		if err != nil {
			if errors.Is(err, store.ErrEmptyCart) {
				return fiber.NewError(fiber.StatusBadRequest, "El carrito está vacío")
			}
			if errors.Is(err, store.ErrProductNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Producto no encontrado: "+err.Error())
			}
			return err
		}

		return c.JSON(QuoteResponse{
			Items:      items,
			Totals:     calc.CalculateCartTotals(items),
			StockCheck: calc.CanProcessSale(items, state.Supplies),
		})
	}
}

// POST /api/sales
// Registra la venta. El alta de la venta y el descuento de insumos son un solo
// commit contra el snapshot.
func CreateSaleHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if !validPaymentMethod(body.PaymentMethod) {
			return fiber.NewError(fiber.StatusBadRequest, "Método de pago inválido (efectivo, transferencia o tarjeta)")
		}

		sale, err := st.RecordSale(body.Items, body.PaymentMethod)
		if err != nil {
			var insufficient *store.InsufficientStockError
			if errors.As(err, &insufficient) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":        "Stock insuficiente para procesar la venta",
					"missingItems": insufficient.Missing,
				})
			}
			if errors.Is(err, store.ErrEmptyCart) {
				return fiber.NewError(fiber.StatusBadRequest, "El carrito está vacío")
			}
			if errors.Is(err, store.ErrProductNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// GET /api/sales?from=YYYY-MM-DD&to=YYYY-MM-DD
func ListSalesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := st.State()
		sales := state.Sales

		from := c.Query("from")
		to := c.Query("to")
		if from != "" || to != "" {
			if from == "" || to == "" {
				return fiber.NewError(fiber.StatusBadRequest, "from y to van juntos (YYYY-MM-DD)")
			}
			sales = calc.SalesInRange(sales, from, to)
		}
		if sales == nil {
			sales = []models.Sale{}
		}

		var total float64
		for _, s := range sales {
			total += s.Total
		}
		return c.JSON(ListSalesResponse{Sales: sales, Total: total})
	}
}

// DELETE /api/sales/:id
func DeleteSaleHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.DeleteSale(c.Params("id")); err != nil {
			if errors.Is(err, store.ErrSaleNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Venta no encontrada")
			}
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
