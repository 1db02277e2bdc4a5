package reports

import (
	"fmt"
	"time"

	"printco-backend/internal/calc"
	"printco-backend/internal/dateutil"
	"printco-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

func parsePeriod(c *fiber.Ctx) (dateutil.Period, time.Time, error) {
	period := dateutil.Period(c.Query("period", string(dateutil.PeriodDaily)))
	switch period {
	case dateutil.PeriodDaily, dateutil.PeriodWeekly, dateutil.PeriodMonthly:
	default:
		return "", time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Período inválido (daily, weekly o monthly)")
	}

	anchor := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := dateutil.ParseDate(dateStr)
		if err != nil {
			return "", time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Fecha inválida, formato esperado YYYY-MM-DD")
		}
		anchor = parsed
	}
	return period, anchor, nil
}

// GET /api/reports?period=daily|weekly|monthly&date=YYYY-MM-DD
func SalesReportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period, anchor, err := parsePeriod(c)
		if err != nil {
			return err
		}

		state := st.State()
		report := calc.CalculateSalesReport(period, anchor, state.Sales, state.Expenses, state.Products)
		return c.JSON(report)
	}
}

// GET /api/dashboard
func DashboardHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(calc.CalculateDashboardStats(st.State(), time.Now()))
	}
}

var periodTitles = map[dateutil.Period]string{
	dateutil.PeriodDaily:   "Diario",
	dateutil.PeriodWeekly:  "Semanal",
	dateutil.PeriodMonthly: "Mensual",
}

// GET /api/reports/export?period=&date=
// Genera el reporte del período como planilla .xlsx descargable.
func ExportReportHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period, anchor, err := parsePeriod(c)
		if err != nil {
			return err
		}

		state := st.State()
		report := calc.CalculateSalesReport(period, anchor, state.Sales, state.Expenses, state.Products)

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Reporte"
		f.SetSheetName("Sheet1", sheet)

		bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

		f.SetCellValue(sheet, "A1", state.Settings.BusinessName+" - Reporte "+periodTitles[period])
		f.SetCellStyle(sheet, "A1", "A1", bold)
		f.SetCellValue(sheet, "A2", "Período")
		f.SetCellValue(sheet, "B2", report.StartDate+" a "+report.EndDate)

		rows := [][]interface{}{
			{"Ventas totales", report.TotalSales},
			{"Ganancia", report.TotalProfit},
			{"Gastos", report.TotalExpenses},
			{"Ganancia neta", report.NetProfit},
			{"Cantidad de ventas", report.SalesCount},
			{"Ticket promedio", report.AverageTicket},
		}
		for i, row := range rows {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", 4+i), row[0])
			f.SetCellValue(sheet, fmt.Sprintf("B%d", 4+i), row[1])
		}

		headerRow := 4 + len(rows) + 1
		f.SetCellValue(sheet, fmt.Sprintf("A%d", headerRow), "Producto")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", headerRow), "Cantidad")
		f.SetCellValue(sheet, fmt.Sprintf("C%d", headerRow), "Facturación")
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("C%d", headerRow), bold)
		for i, top := range report.TopProducts {
			row := headerRow + 1 + i
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), top.ProductName)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), top.Quantity)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), top.Revenue)
		}

		f.SetColWidth(sheet, "A", "A", 40)
		f.SetColWidth(sheet, "B", "C", 16)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el archivo Excel")
		}

		filename := fmt.Sprintf("reporte_%s_%s.xlsx", period, report.StartDate)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		return c.Send(buf.Bytes())
	}
}
