package calc

import (
	"testing"
	"time"

	"printco-backend/internal/dateutil"
	"printco-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleOn(date string, total, profit float64, items ...models.SaleItem) models.Sale {
	return models.Sale{ID: "SALE_" + date, Date: date, Total: total, Profit: profit, Items: items, PaymentMethod: models.PaymentCash}
}

func expenseOn(date string, amount float64) models.Expense {
	return models.Expense{ID: "EXP_" + date, Date: date, Concept: "gasto", Amount: amount, Category: models.ExpenseCategoryOther}
}

func TestMonthlyReportRange(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

	sales := []models.Sale{
		saleOn("2024-03-31T23:00:00", 100, 40),
		saleOn("2024-04-01T00:00:00", 999, 500), // fuera del mes
		saleOn("2024-03-01T08:15:00", 200, 80),
	}

	report := CalculateSalesReport(dateutil.PeriodMonthly, anchor, sales, nil, nil)

	assert.Equal(t, "2024-03-01", report.StartDate)
	assert.Equal(t, "2024-03-31", report.EndDate)
	assert.Equal(t, 2, report.SalesCount)
	assert.Equal(t, 300.0, report.TotalSales)
	assert.Equal(t, 120.0, report.TotalProfit)
	assert.Equal(t, 150.0, report.AverageTicket)
}

func TestReportNetProfitAndExpenses(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	sales := []models.Sale{saleOn("2024-03-15T10:00:00", 500, 200)}
	expenses := []models.Expense{
		expenseOn("2024-03-10T09:00:00", 80),
		expenseOn("2024-02-28T09:00:00", 999), // mes anterior
	}

	report := CalculateSalesReport(dateutil.PeriodMonthly, anchor, sales, expenses, nil)
	assert.Equal(t, 80.0, report.TotalExpenses)
	assert.Equal(t, 120.0, report.NetProfit)
}

func TestAverageTicketZeroWhenNoSales(t *testing.T) {
	report := CalculateSalesReport(dateutil.PeriodDaily, time.Now(), nil, nil, nil)

	assert.Equal(t, 0, report.SalesCount)
	assert.Equal(t, 0.0, report.AverageTicket)
	assert.NotNil(t, report.TopProducts)
	assert.Empty(t, report.TopProducts)
}

func TestTopProducts(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	products := []models.Product{
		{ID: "p1", Name: "Impresión A4"},
		{ID: "p2", Name: "Encuadernado"},
	}

	item := func(id string, qty, subtotal float64) models.SaleItem {
		return models.SaleItem{ProductID: id, Quantity: qty, Subtotal: subtotal}
	}
	sales := []models.Sale{
		saleOn("2024-03-01T10:00:00", 0, 0, item("p1", 2, 300), item("p2", 1, 550)),
		saleOn("2024-03-02T10:00:00", 0, 0, item("p1", 1, 150), item("borrado", 1, 400)),
	}

	report := CalculateSalesReport(dateutil.PeriodMonthly, anchor, sales, nil, products)

	require.Len(t, report.TopProducts, 3)
	// descendente por facturación; el producto sin entrada de catálogo rankea igual
	assert.Equal(t, "p2", report.TopProducts[0].ProductID)
	assert.Equal(t, "p1", report.TopProducts[1].ProductID)
	assert.Equal(t, 450.0, report.TopProducts[1].Revenue)
	assert.Equal(t, 3.0, report.TopProducts[1].Quantity)
	assert.Equal(t, "Producto eliminado", report.TopProducts[2].ProductName)
	assert.Equal(t, 400.0, report.TopProducts[2].Revenue)
}

func TestTopProductsLimitedToFive(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	var items []models.SaleItem
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		items = append(items, models.SaleItem{ProductID: id, Quantity: 1, Subtotal: float64(len(items) + 1)})
	}
	sales := []models.Sale{saleOn("2024-03-05T10:00:00", 0, 0, items...)}

	report := CalculateSalesReport(dateutil.PeriodMonthly, anchor, sales, nil, nil)
	assert.Len(t, report.TopProducts, 5)
}

func TestCalculateDailySummary(t *testing.T) {
	sales := []models.Sale{
		saleOn("2024-03-15T10:00:00", 300, 120),
		saleOn("2024-03-15T18:30:00", 200, 80),
		saleOn("2024-03-16T09:00:00", 999, 500),
	}
	expenses := []models.Expense{expenseOn("2024-03-15T12:00:00", 50)}

	summary := CalculateDailySummary("2024-03-15", sales, expenses)
	assert.Equal(t, 2, summary.SalesCount)
	assert.Equal(t, 500.0, summary.TotalSales)
	assert.Equal(t, 200.0, summary.TotalProfit)
	assert.Equal(t, 50.0, summary.TotalExpenses)
	assert.Equal(t, 150.0, summary.NetProfit)
}

func TestCalculateDashboardStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.Local)
	state := models.AppState{
		Sales: []models.Sale{
			saleOn("2024-03-15T10:00:00", 300, 120),
			saleOn("2024-03-02T10:00:00", 100, 40),
			saleOn("2024-02-20T10:00:00", 999, 500), // otro mes
		},
		Expenses: []models.Expense{expenseOn("2024-03-15T12:00:00", 30)},
		Supplies: []models.Supply{supply("bajo", 4, 10), supply("ok", 50, 10)},
	}

	stats := CalculateDashboardStats(state, now)
	assert.Equal(t, 300.0, stats.TodaySales)
	assert.Equal(t, 120.0, stats.TodayProfit)
	assert.Equal(t, 30.0, stats.TodayExpenses)
	assert.Equal(t, 400.0, stats.MonthSales)
	assert.Equal(t, 160.0, stats.MonthProfit)
	assert.Equal(t, 1, stats.LowStockItems)
}
