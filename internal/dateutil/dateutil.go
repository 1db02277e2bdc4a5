// Package dateutil maneja las fechas del snapshot. Todo se guarda como string
// ordenable ("2006-01-02" o "2006-01-02T15:04:05") en hora local, nunca UTC:
// el filtrado por rango de los reportes compara estos strings lexicográficamente
// y depende del zero-padding.
package dateutil

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// DateOnly: prefijo de fecha de un timestamp guardado ("2024-03-15T10:30:00" -> "2024-03-15").
func DateOnly(stored string) string {
	if len(stored) > len(DateLayout) {
		return stored[:len(DateLayout)]
	}
	return stored
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// StartOfWeek: lunes de la semana que contiene t.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // domingo cierra la semana
	}
	return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
}

func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	// día 0 del mes siguiente = último día de este mes
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// WeekRange: rango lunes-domingo como strings de fecha inclusivos.
func WeekRange(t time.Time) (string, string) {
	return FormatDate(StartOfWeek(t)), FormatDate(EndOfWeek(t))
}

// MonthRange: primer y último día calendario del mes de t.
func MonthRange(t time.Time) (string, string) {
	return FormatDate(StartOfMonth(t)), FormatDate(EndOfMonth(t))
}

// DateRange: rango calendario inclusivo del período que contiene t.
func DateRange(period Period, t time.Time) (string, string) {
	switch period {
	case PeriodWeekly:
		return WeekRange(t)
	case PeriodMonthly:
		return MonthRange(t)
	default: // daily
		day := FormatDate(t)
		return day, day
	}
}

// InRange: pertenencia por comparación lexicográfica del prefijo de fecha.
func InRange(stored, start, end string) bool {
	d := DateOnly(stored)
	return d >= start && d <= end
}
