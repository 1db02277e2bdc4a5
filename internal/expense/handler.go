package expense

import (
	"errors"
	"strings"

	"printco-backend/internal/calc"
	"printco-backend/internal/dateutil"
	"printco-backend/internal/models"
	"printco-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ExpenseRequest struct {
	ID          string                 `json:"id"` // presente = edición en el lugar
	Date        string                 `json:"date"`
	Concept     string                 `json:"concept"`
	Amount      float64                `json:"amount"`
	Category    models.ExpenseCategory `json:"category"`
	Description string                 `json:"description"`
}

type ExpenseResponse struct {
	models.Expense
	CategoryName string `json:"categoryName"`
}

type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    float64           `json:"total"`
}

func validCategory(c models.ExpenseCategory) bool {
	switch c {
	case models.ExpenseCategorySupplies, models.ExpenseCategoryServices,
		models.ExpenseCategoryRent, models.ExpenseCategoryTaxes, models.ExpenseCategoryOther:
		return true
	}
	return false
}

func toResponse(e models.Expense) ExpenseResponse {
	return ExpenseResponse{Expense: e, CategoryName: e.Category.DisplayName()}
}

// POST /api/expenses
// Crea, o edita en el lugar si viene id.
func SaveExpenseHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if strings.TrimSpace(body.Concept) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El concepto es obligatorio")
		}
		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El monto debe ser mayor a 0")
		}
		if !validCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "Categoría inválida (insumos, servicios, alquiler, impuestos u otros)")
		}
		if body.Date != "" {
			if _, err := dateutil.ParseDate(dateutil.DateOnly(body.Date)); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida, formato esperado YYYY-MM-DD")
			}
		}

		status := fiber.StatusCreated
		if body.ID != "" {
			if exists := expenseExists(st.State().Expenses, body.ID); !exists {
				return fiber.NewError(fiber.StatusNotFound, "Gasto no encontrado")
			}
			status = fiber.StatusOK
		}

		saved, err := st.SaveExpense(models.Expense{
			ID:          body.ID,
			Date:        body.Date,
			Concept:     strings.TrimSpace(body.Concept),
			Amount:      body.Amount,
			Category:    body.Category,
			Description: body.Description,
		})
		if err != nil {
			return err
		}
		return c.Status(status).JSON(toResponse(saved))
	}
}

func expenseExists(expenses []models.Expense, id string) bool {
	for _, e := range expenses {
		if e.ID == id {
			return true
		}
	}
	return false
}

// GET /api/expenses?from=YYYY-MM-DD&to=YYYY-MM-DD
func ListExpensesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := st.State()
		expenses := state.Expenses

		from := c.Query("from")
		to := c.Query("to")
		if from != "" || to != "" {
			if from == "" || to == "" {
				return fiber.NewError(fiber.StatusBadRequest, "from y to van juntos (YYYY-MM-DD)")
			}
			expenses = calc.ExpensesInRange(expenses, from, to)
		}

		res := ListExpensesResponse{Expenses: make([]ExpenseResponse, 0, len(expenses))}
		for _, e := range expenses {
			res.Expenses = append(res.Expenses, toResponse(e))
			res.Total += e.Amount
		}
		return c.JSON(res)
	}
}

// DELETE /api/expenses/:id
func DeleteExpenseHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.DeleteExpense(c.Params("id")); err != nil {
			if errors.Is(err, store.ErrExpenseNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Gasto no encontrado")
			}
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
