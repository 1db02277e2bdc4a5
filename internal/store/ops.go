package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printco-backend/internal/calc"
	"printco-backend/internal/dateutil"
	"printco-backend/internal/models"
)

var (
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrSupplyNotFound  = errors.New("insumo no encontrado")
	ErrSaleNotFound    = errors.New("venta no encontrada")
	ErrExpenseNotFound = errors.New("gasto no encontrado")
	ErrRegisterClosed  = errors.New("la caja de esa fecha ya está cerrada")
	ErrNegativeStock   = errors.New("el stock no puede ser negativo")
)

// InsufficientStockError conserva los mensajes de faltantes para mostrarlos
// uno por uno, como hace la verificación previa.
type InsufficientStockError struct {
	Missing []string
}

func (e *InsufficientStockError) Error() string {
	return "stock insuficiente: " + strings.Join(e.Missing, "; ")
}

// SaleLine: línea de carrito tal como llega del mostrador.
type SaleLine struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// BuildCart arma los items del carrito con los precios actuales del catálogo.
// Líneas repetidas del mismo producto se acumulan; cantidad <= 0 descarta la línea.
func BuildCart(state models.AppState, lines []SaleLine) ([]calc.CartItem, error) {
	var items []calc.CartItem
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		product, ok := state.FindProduct(line.ProductID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
		}
		items = calc.AddToCart(items, product, line.Quantity)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	return items, nil
}

// RecordSale registra la venta y descuenta stock en una sola transición de
// snapshot. La suficiencia se re-verifica adentro de la transformación, así no
// hay ventana entre chequeo y commit ni estados a medio aplicar.
func (s *Store) RecordSale(lines []SaleLine, method models.PaymentMethod) (models.Sale, error) {
	var sale models.Sale
	err := s.Update(func(state models.AppState) (models.AppState, error) {
		items, err := BuildCart(state, lines)
		if err != nil {
			return state, err
		}

		check := calc.CanProcessSale(items, state.Supplies)
		if !check.CanProcess {
			return state, &InsufficientStockError{Missing: check.MissingItems}
		}

		totals := calc.CalculateCartTotals(items)
		saleItems := make([]models.SaleItem, len(items))
		for i, item := range items {
			// precio y costo quedan congelados en la venta; editar el
			// producto después no cambia las cifras históricas
			saleItems[i] = models.SaleItem{
				ProductID:   item.Product.ID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.Product.Price,
				Subtotal:    item.Subtotal,
				UnitCost:    item.Product.Cost,
				Profit:      item.Profit,
			}
		}

		sale = models.Sale{
			ID:            NewSaleID(),
			Date:          dateutil.FormatDateTime(time.Now()),
			Items:         saleItems,
			Total:         totals.Total,
			Profit:        totals.TotalProfit,
			PaymentMethod: method,
		}

		// la más nueva primero
		state.Sales = append([]models.Sale{sale}, state.Sales...)

		deductions := calc.StockDeductions(items)
		for i, supply := range state.Supplies {
			if qty, ok := deductions[supply.ID]; ok {
				newStock := supply.CurrentStock - qty
				if newStock < 0 {
					newStock = 0
				}
				state.Supplies[i].CurrentStock = newStock
			}
		}

		return state, nil
	})
	return sale, err
}

func (s *Store) DeleteSale(id string) error {
	return s.Update(func(state models.AppState) (models.AppState, error) {
		for i, sale := range state.Sales {
			if sale.ID == id {
				state.Sales = append(state.Sales[:i], state.Sales[i+1:]...)
				return state, nil
			}
		}
		return state, ErrSaleNotFound
	})
}

// SaveExpense crea o edita en el lugar, emparejando por id.
func (s *Store) SaveExpense(expense models.Expense) (models.Expense, error) {
	if expense.ID == "" {
		expense.ID = NewExpenseID()
	}
	if expense.Date == "" {
		expense.Date = dateutil.FormatDateTime(time.Now())
	}
	err := s.Update(func(state models.AppState) (models.AppState, error) {
		for i, existing := range state.Expenses {
			if existing.ID == expense.ID {
				state.Expenses[i] = expense
				return state, nil
			}
		}
		state.Expenses = append([]models.Expense{expense}, state.Expenses...)
		return state, nil
	})
	return expense, err
}

func (s *Store) DeleteExpense(id string) error {
	return s.Update(func(state models.AppState) (models.AppState, error) {
		for i, expense := range state.Expenses {
			if expense.ID == id {
				state.Expenses = append(state.Expenses[:i], state.Expenses[i+1:]...)
				return state, nil
			}
		}
		return state, ErrExpenseNotFound
	})
}

// SaveProduct crea o edita en el lugar, emparejando por id.
func (s *Store) SaveProduct(product models.Product) (models.Product, error) {
	if product.ID == "" {
		product.ID = NewProductID()
	}
	err := s.Update(func(state models.AppState) (models.AppState, error) {
		for i, existing := range state.Products {
			if existing.ID == product.ID {
				state.Products[i] = product
				return state, nil
			}
		}
		state.Products = append(state.Products, product)
		return state, nil
	})
	return product, err
}

func (s *Store) DeleteProduct(id string) error {
	return s.Update(func(state models.AppState) (models.AppState, error) {
		for i, product := range state.Products {
			if product.ID == id {
				state.Products = append(state.Products[:i], state.Products[i+1:]...)
				return state, nil
			}
		}
		return state, ErrProductNotFound
	})
}

// SetSupplyStock: edición manual, valor absoluto.
func (s *Store) SetSupplyStock(supplyID string, stock float64) (models.Supply, error) {
	if stock < 0 {
		return models.Supply{}, ErrNegativeStock
	}
	return s.updateSupply(supplyID, func(models.Supply) float64 { return stock })
}

// AdjustSupplyStock: ajuste rápido +/-, recortado para que nunca quede negativo.
func (s *Store) AdjustSupplyStock(supplyID string, delta float64) (models.Supply, error) {
	return s.updateSupply(supplyID, func(supply models.Supply) float64 {
		newStock := supply.CurrentStock + delta
		if newStock < 0 {
			newStock = 0
		}
		return newStock
	})
}

func (s *Store) updateSupply(supplyID string, newStock func(models.Supply) float64) (models.Supply, error) {
	var updated models.Supply
	err := s.Update(func(state models.AppState) (models.AppState, error) {
		for i, supply := range state.Supplies {
			if supply.ID == supplyID {
				state.Supplies[i].CurrentStock = newStock(supply)
				updated = state.Supplies[i]
				return state, nil
			}
		}
		return state, fmt.Errorf("%w: %s", ErrSupplyNotFound, supplyID)
	})
	return updated, err
}

// CloseCashRegister cierra la caja de una fecha: ventas en efectivo y gastos
// del día salen del snapshot, el saldo final es apertura + efectivo - gastos.
// Un registro ya cerrado se rechaza acá, no solo en la presentación.
func (s *Store) CloseCashRegister(date string, openingAmount float64) (models.CashRegister, error) {
	if _, err := dateutil.ParseDate(date); err != nil {
		return models.CashRegister{}, fmt.Errorf("fecha inválida %q: formato esperado YYYY-MM-DD", date)
	}

	var register models.CashRegister
	err := s.Update(func(state models.AppState) (models.AppState, error) {
		existing, found := state.FindCashRegister(date)
		if found && existing.Closed {
			return state, ErrRegisterClosed
		}

		var cashSales, expenses float64
		for _, sale := range state.Sales {
			if strings.HasPrefix(sale.Date, date) && sale.PaymentMethod == models.PaymentCash {
				cashSales += sale.Total
			}
		}
		for _, expense := range state.Expenses {
			if strings.HasPrefix(expense.Date, date) {
				expenses += expense.Amount
			}
		}

		id := CashRegisterID(date)
		if found {
			id = existing.ID
		}
		register = models.CashRegister{
			ID:            id,
			Date:          date,
			OpeningAmount: openingAmount,
			CashSales:     cashSales,
			TotalExpenses: expenses,
			FinalBalance:  openingAmount + cashSales - expenses,
			Closed:        true,
		}

		if found {
			for i, cr := range state.CashRegisters {
				if cr.Date == date {
					state.CashRegisters[i] = register
					break
				}
			}
		} else {
			state.CashRegisters = append(state.CashRegisters, register)
		}
		return state, nil
	})
	return register, err
}

// UpdateSettings reemplaza la configuración completa del negocio.
func (s *Store) UpdateSettings(settings models.AppSettings) error {
	return s.Update(func(state models.AppState) (models.AppState, error) {
		state.Settings = settings
		return state, nil
	})
}
