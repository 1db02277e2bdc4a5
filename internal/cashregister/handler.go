package cashregister

import (
	"errors"
	"sort"
	"strings"
	"time"

	"printco-backend/internal/dateutil"
	"printco-backend/internal/models"
	"printco-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type DayTotals struct {
	Sales         float64 `json:"sales"`
	CashSales     float64 `json:"cashSales"`
	TransferSales float64 `json:"transferSales"`
	CardSales     float64 `json:"cardSales"`
	Profit        float64 `json:"profit"`
	Expenses      float64 `json:"expenses"`
	NetProfit     float64 `json:"netProfit"`
}

type DaySummaryResponse struct {
	Date               string               `json:"date"`
	SalesCount         int                  `json:"salesCount"`
	CashSalesCount     int                  `json:"cashSalesCount"`
	ExpensesCount      int                  `json:"expensesCount"`
	Totals             DayTotals            `json:"totals"`
	CashRegister       *models.CashRegister `json:"cashRegister,omitempty"`
	PreviousDayBalance *float64             `json:"previousDayBalance,omitempty"`
}

type CloseRequest struct {
	Date          string  `json:"date"`
	OpeningAmount float64 `json:"openingAmount"`
}

// GET /api/cash-register/day?date=YYYY-MM-DD
// Todo lo que necesita la pantalla de cierre: totales del día por método de
// pago, gastos, el cierre existente si lo hay y el saldo del día anterior cerrado.
func DaySummaryHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			date = dateutil.FormatDate(time.Now())
		}
		parsed, err := dateutil.ParseDate(date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida, formato esperado YYYY-MM-DD")
		}

		state := st.State()
		res := DaySummaryResponse{Date: date}

		for _, sale := range state.Sales {
			if !strings.HasPrefix(sale.Date, date) {
				continue
			}
			res.SalesCount++
			res.Totals.Sales += sale.Total
			res.Totals.Profit += sale.Profit
			switch sale.PaymentMethod {
			case models.PaymentCash:
				res.CashSalesCount++
				res.Totals.CashSales += sale.Total
			case models.PaymentTransfer:
				res.Totals.TransferSales += sale.Total
			case models.PaymentCard:
				res.Totals.CardSales += sale.Total
			}
		}
		for _, expense := range state.Expenses {
			if strings.HasPrefix(expense.Date, date) {
				res.ExpensesCount++
				res.Totals.Expenses += expense.Amount
			}
		}
		res.Totals.NetProfit = res.Totals.Profit - res.Totals.Expenses

		if register, ok := state.FindCashRegister(date); ok {
			res.CashRegister = &register
		}

		previousDate := dateutil.FormatDate(dateutil.AddDays(parsed, -1))
		if previous, ok := state.FindCashRegister(previousDate); ok && previous.Closed {
			res.PreviousDayBalance = &previous.FinalBalance
		}

		return c.JSON(res)
	}
}

// POST /api/cash-register/close
// Cierra la caja de la fecha. Una fecha ya cerrada se rechaza con 409.
func CloseHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CloseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if body.Date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "La fecha es obligatoria (YYYY-MM-DD)")
		}
		if body.OpeningAmount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Ingresa un monto de apertura válido")
		}

		register, err := st.CloseCashRegister(body.Date, body.OpeningAmount)
		if err != nil {
			if errors.Is(err, store.ErrRegisterClosed) {
				return fiber.NewError(fiber.StatusConflict, "La caja de esa fecha ya está cerrada")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(register)
	}
}

// GET /api/cash-register/closures?limit=N
// Últimos cierres, el más reciente primero. Por defecto 5.
func ClosuresHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := st.State()

		closures := make([]models.CashRegister, 0, len(state.CashRegisters))
		for _, cr := range state.CashRegisters {
			if cr.Closed {
				closures = append(closures, cr)
			}
		}
		sort.Slice(closures, func(i, j int) bool {
			return closures[i].Date > closures[j].Date
		})

		limit := c.QueryInt("limit", 5)
		if limit > 0 && limit < len(closures) {
			closures = closures[:limit]
		}
		return c.JSON(closures)
	}
}
