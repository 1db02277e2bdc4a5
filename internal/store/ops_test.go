package store

import (
	"testing"
	"time"

	"printco-backend/internal/dateutil"
	"printco-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supplyStock(t *testing.T, s *Store, id string) float64 {
	t.Helper()
	supply, ok := s.State().FindSupply(id)
	require.True(t, ok, "insumo %s", id)
	return supply.CurrentStock
}

func TestRecordSaleDeductsStockAtomically(t *testing.T) {
	s := newTestStore(t)
	require.Equal(t, 500.0, supplyStock(t, s, "papel_obra_80_a4"))

	sale, err := s.RecordSale([]SaleLine{{ProductID: "imp_a4_obra80_simple_color", Quantity: 3}}, models.PaymentCash)
	require.NoError(t, err)

	assert.Equal(t, 450.0, sale.Total)
	assert.Equal(t, 315.0, sale.Profit)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, 150.0, sale.Items[0].UnitPrice)
	assert.Equal(t, 45.0, sale.Items[0].UnitCost)

	state := s.State()
	require.Len(t, state.Sales, 1)
	assert.Equal(t, 497.0, supplyStock(t, s, "papel_obra_80_a4"))
}

func TestRecordSalePrependsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first, err := s.RecordSale([]SaleLine{{ProductID: "imp_a4_obra80_simple_bn", Quantity: 1}}, models.PaymentCash)
	require.NoError(t, err)
	second, err := s.RecordSale([]SaleLine{{ProductID: "imp_a4_obra80_simple_bn", Quantity: 2}}, models.PaymentCard)
	require.NoError(t, err)

	state := s.State()
	require.Len(t, state.Sales, 2)
	assert.Equal(t, second.ID, state.Sales[0].ID)
	assert.Equal(t, first.ID, state.Sales[1].ID)
}

func TestRecordSaleMergesDuplicateLines(t *testing.T) {
	s := newTestStore(t)

	sale, err := s.RecordSale([]SaleLine{
		{ProductID: "imp_a4_obra80_simple_color", Quantity: 2},
		{ProductID: "imp_a4_obra80_simple_color", Quantity: 3},
	}, models.PaymentCash)
	require.NoError(t, err)

	require.Len(t, sale.Items, 1)
	assert.Equal(t, 5.0, sale.Items[0].Quantity)
	assert.Equal(t, 750.0, sale.Total)
}

func TestRecordSaleInsufficientStockRejectsWholeSale(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SetSupplyStock("papel_obra_80_a4", 2)
	require.NoError(t, err)

	_, err = s.RecordSale([]SaleLine{{ProductID: "imp_a4_obra80_simple_color", Quantity: 3}}, models.PaymentCash)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	require.Len(t, insufficient.Missing, 1)
	assert.Contains(t, insufficient.Missing[0], "Stock insuficiente: Papel Obra 80gr A4")

	// nada a medio aplicar: ni venta registrada ni stock tocado
	assert.Empty(t, s.State().Sales)
	assert.Equal(t, 2.0, supplyStock(t, s, "papel_obra_80_a4"))
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	s := newTestStore(t)
	_, err := s.RecordSale([]SaleLine{{ProductID: "inexistente", Quantity: 1}}, models.PaymentCash)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRecordSaleEmptyCart(t *testing.T) {
	s := newTestStore(t)

	_, err := s.RecordSale(nil, models.PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// cantidades en cero también dejan el carrito vacío
	_, err = s.RecordSale([]SaleLine{{ProductID: "imp_a4_obra80_simple_color", Quantity: 0}}, models.PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSaleSnapshotSurvivesProductEdit(t *testing.T) {
	s := newTestStore(t)

	sale, err := s.RecordSale([]SaleLine{{ProductID: "imp_a4_obra80_simple_color", Quantity: 1}}, models.PaymentCash)
	require.NoError(t, err)

	product, ok := s.State().FindProduct("imp_a4_obra80_simple_color")
	require.True(t, ok)
	product.Price = 999
	_, err = s.SaveProduct(product)
	require.NoError(t, err)

	// las cifras históricas no cambian con la edición del producto
	stored := s.State().Sales[0]
	assert.Equal(t, sale.Total, stored.Total)
	assert.Equal(t, 150.0, stored.Items[0].UnitPrice)
}

func TestSetSupplyStock(t *testing.T) {
	s := newTestStore(t)

	supply, err := s.SetSupplyStock("espiral_9mm", 42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, supply.CurrentStock)

	_, err = s.SetSupplyStock("espiral_9mm", -1)
	assert.ErrorIs(t, err, ErrNegativeStock)

	_, err = s.SetSupplyStock("inexistente", 10)
	assert.ErrorIs(t, err, ErrSupplyNotFound)
}

func TestAdjustSupplyStockClampsAtZero(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SetSupplyStock("espiral_9mm", 5)
	require.NoError(t, err)

	supply, err := s.AdjustSupplyStock("espiral_9mm", -10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, supply.CurrentStock)

	supply, err = s.AdjustSupplyStock("espiral_9mm", 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, supply.CurrentStock)
}

func TestSaveExpenseCreateAndEditInPlace(t *testing.T) {
	s := newTestStore(t)

	created, err := s.SaveExpense(models.Expense{Concept: "Tinta", Amount: 300, Category: models.ExpenseCategorySupplies})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Date)

	other, err := s.SaveExpense(models.Expense{Concept: "Luz", Amount: 100, Category: models.ExpenseCategoryServices})
	require.NoError(t, err)

	// editar por id reemplaza en el lugar, sin duplicar ni reordenar
	created.Amount = 350
	_, err = s.SaveExpense(created)
	require.NoError(t, err)

	state := s.State()
	require.Len(t, state.Expenses, 2)
	assert.Equal(t, other.ID, state.Expenses[0].ID)
	assert.Equal(t, created.ID, state.Expenses[1].ID)
	assert.Equal(t, 350.0, state.Expenses[1].Amount)
}

func TestDeleteOperations(t *testing.T) {
	s := newTestStore(t)

	expense, err := s.SaveExpense(models.Expense{Concept: "x", Amount: 10, Category: models.ExpenseCategoryOther})
	require.NoError(t, err)
	require.NoError(t, s.DeleteExpense(expense.ID))
	assert.ErrorIs(t, s.DeleteExpense(expense.ID), ErrExpenseNotFound)

	require.NoError(t, s.DeleteProduct("enc_9mm"))
	_, found := s.State().FindProduct("enc_9mm")
	assert.False(t, found)
	assert.ErrorIs(t, s.DeleteProduct("enc_9mm"), ErrProductNotFound)

	sale, err := s.RecordSale([]SaleLine{{ProductID: "imp_a4_obra80_simple_bn", Quantity: 1}}, models.PaymentCash)
	require.NoError(t, err)
	require.NoError(t, s.DeleteSale(sale.ID))
	assert.ErrorIs(t, s.DeleteSale(sale.ID), ErrSaleNotFound)
}

func TestCloseCashRegister(t *testing.T) {
	s := newTestStore(t)
	today := dateutil.FormatDate(time.Now())

	// producto de precio fijo para controlar los números del día
	product, err := s.SaveProduct(models.Product{
		Name:             "Servicio de diseño",
		Category:         models.ProductCategoryPrinting,
		Price:            500,
		Cost:             100,
		RequiredSupplies: map[string]float64{},
	})
	require.NoError(t, err)

	_, err = s.RecordSale([]SaleLine{{ProductID: product.ID, Quantity: 1}}, models.PaymentCash)
	require.NoError(t, err)
	// una venta con tarjeta no entra al efectivo de caja
	_, err = s.RecordSale([]SaleLine{{ProductID: product.ID, Quantity: 2}}, models.PaymentCard)
	require.NoError(t, err)
	_, err = s.SaveExpense(models.Expense{Concept: "Flete", Amount: 200, Category: models.ExpenseCategoryOther})
	require.NoError(t, err)

	register, err := s.CloseCashRegister(today, 1000)
	require.NoError(t, err)

	assert.Equal(t, 500.0, register.CashSales)
	assert.Equal(t, 200.0, register.TotalExpenses)
	assert.Equal(t, 1300.0, register.FinalBalance)
	assert.True(t, register.Closed)
	assert.Equal(t, "CASH_"+today, register.ID)

	// un registro por fecha
	require.Len(t, s.State().CashRegisters, 1)

	// re-cerrar una fecha ya cerrada se rechaza en la capa de operaciones
	_, err = s.CloseCashRegister(today, 5000)
	assert.ErrorIs(t, err, ErrRegisterClosed)
}

func TestCloseCashRegisterInvalidDate(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CloseCashRegister("15/03/2024", 100)
	assert.Error(t, err)
}

func TestBuildCartSkipsNonPositiveQuantities(t *testing.T) {
	s := newTestStore(t)
	items, err := BuildCart(s.State(), []SaleLine{
		{ProductID: "imp_a4_obra80_simple_color", Quantity: 2},
		{ProductID: "imp_a4_obra80_simple_bn", Quantity: -1},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "imp_a4_obra80_simple_color", items[0].Product.ID)
}
