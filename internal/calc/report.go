package calc

import (
	"sort"
	"strings"
	"time"

	"printco-backend/internal/dateutil"
	"printco-backend/internal/models"
)

type DailySummary struct {
	Date          string  `json:"date"`
	TotalSales    float64 `json:"totalSales"`
	TotalProfit   float64 `json:"totalProfit"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	SalesCount    int     `json:"salesCount"`
}

type TopProduct struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

type SalesReport struct {
	Period        dateutil.Period `json:"period"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	TotalSales    float64         `json:"totalSales"`
	TotalProfit   float64         `json:"totalProfit"`
	TotalExpenses float64         `json:"totalExpenses"`
	NetProfit     float64         `json:"netProfit"`
	SalesCount    int             `json:"salesCount"`
	AverageTicket float64         `json:"averageTicket"`
	TopProducts   []TopProduct    `json:"topProducts"`
}

type DashboardStats struct {
	TodaySales    float64 `json:"todaySales"`
	TodayProfit   float64 `json:"todayProfit"`
	TodayExpenses float64 `json:"todayExpenses"`
	MonthSales    float64 `json:"monthSales"`
	MonthProfit   float64 `json:"monthProfit"`
	LowStockItems int     `json:"lowStockItems"`
	PendingOrders int     `json:"pendingOrders"`
}

func SalesInRange(sales []models.Sale, start, end string) []models.Sale {
	var out []models.Sale
	for _, s := range sales {
		if dateutil.InRange(s.Date, start, end) {
			out = append(out, s)
		}
	}
	return out
}

func ExpensesInRange(expenses []models.Expense, start, end string) []models.Expense {
	var out []models.Expense
	for _, e := range expenses {
		if dateutil.InRange(e.Date, start, end) {
			out = append(out, e)
		}
	}
	return out
}

// CalculateDailySummary: totales de un día calendario.
func CalculateDailySummary(date string, sales []models.Sale, expenses []models.Expense) DailySummary {
	summary := DailySummary{Date: date}
	for _, s := range sales {
		if !strings.HasPrefix(s.Date, date) {
			continue
		}
		summary.TotalSales += s.Total
		summary.TotalProfit += s.Profit
		summary.SalesCount++
	}
	for _, e := range expenses {
		if strings.HasPrefix(e.Date, date) {
			summary.TotalExpenses += e.Amount
		}
	}
	summary.NetProfit = summary.TotalProfit - summary.TotalExpenses
	return summary
}

const topProductsLimit = 5

// CalculateSalesReport: agregación del período (día / semana lunes-domingo /
// mes calendario) anclado en date, con top de productos por facturación.
func CalculateSalesReport(period dateutil.Period, date time.Time, sales []models.Sale, expenses []models.Expense, products []models.Product) SalesReport {
	start, end := dateutil.DateRange(period, date)

	periodSales := SalesInRange(sales, start, end)
	periodExpenses := ExpensesInRange(expenses, start, end)

	report := SalesReport{
		Period:      period,
		StartDate:   start,
		EndDate:     end,
		SalesCount:  len(periodSales),
		TopProducts: []TopProduct{},
	}
	for _, s := range periodSales {
		report.TotalSales += s.Total
		report.TotalProfit += s.Profit
	}
	for _, e := range periodExpenses {
		report.TotalExpenses += e.Amount
	}
	report.NetProfit = report.TotalProfit - report.TotalExpenses
	if report.SalesCount > 0 {
		report.AverageTicket = report.TotalSales / float64(report.SalesCount)
	}

	// productos más vendidos del período
	type acc struct {
		quantity float64
		revenue  float64
	}
	perProduct := make(map[string]*acc)
	var order []string
	for _, s := range periodSales {
		for _, item := range s.Items {
			a, ok := perProduct[item.ProductID]
			if !ok {
				a = &acc{}
				perProduct[item.ProductID] = a
				order = append(order, item.ProductID)
			}
			a.quantity += item.Quantity
			a.revenue += item.Subtotal
		}
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	for _, productID := range order {
		name, ok := names[productID]
		if !ok {
			// el producto pudo haberse borrado del catálogo; igual rankea
			name = "Producto eliminado"
		}
		report.TopProducts = append(report.TopProducts, TopProduct{
			ProductID:   productID,
			ProductName: name,
			Quantity:    perProduct[productID].quantity,
			Revenue:     perProduct[productID].revenue,
		})
	}
	sort.SliceStable(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].Revenue > report.TopProducts[j].Revenue
	})
	if len(report.TopProducts) > topProductsLimit {
		report.TopProducts = report.TopProducts[:topProductsLimit]
	}

	return report
}

// CalculateDashboardStats: tarjetas del panel principal.
func CalculateDashboardStats(state models.AppState, now time.Time) DashboardStats {
	today := dateutil.FormatDate(now)
	thisMonth := today[:7] // yyyy-MM

	var stats DashboardStats
	for _, s := range state.Sales {
		if strings.HasPrefix(s.Date, today) {
			stats.TodaySales += s.Total
			stats.TodayProfit += s.Profit
		}
		if strings.HasPrefix(s.Date, thisMonth) {
			stats.MonthSales += s.Total
			stats.MonthProfit += s.Profit
		}
	}
	for _, e := range state.Expenses {
		if strings.HasPrefix(e.Date, today) {
			stats.TodayExpenses += e.Amount
		}
	}
	stats.LowStockItems = len(StockAlerts(state.Supplies))
	return stats
}
