package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekRangeMondayToSunday(t *testing.T) {
	// 2024-03-15 es viernes
	start, end := WeekRange(time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local))
	assert.Equal(t, "2024-03-11", start)
	assert.Equal(t, "2024-03-17", end)

	// el domingo pertenece a la semana que arranca el lunes anterior
	start, end = WeekRange(time.Date(2024, 3, 17, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "2024-03-11", start)
	assert.Equal(t, "2024-03-17", end)

	// un lunes arranca su propia semana
	start, _ = WeekRange(time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "2024-03-11", start)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "2024-03-01", start)
	assert.Equal(t, "2024-03-31", end)

	// febrero bisiesto
	start, end = MonthRange(time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestDateRangeDaily(t *testing.T) {
	start, end := DateRange(PeriodDaily, time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local))
	assert.Equal(t, "2024-03-15", start)
	assert.Equal(t, "2024-03-15", end)
}

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2024-03-15", DateOnly("2024-03-15T23:00:00"))
	assert.Equal(t, "2024-03-15", DateOnly("2024-03-15"))
}

func TestInRangeInclusive(t *testing.T) {
	assert.True(t, InRange("2024-03-31T23:00:00", "2024-03-01", "2024-03-31"))
	assert.False(t, InRange("2024-04-01T00:00:00", "2024-03-01", "2024-03-31"))
	assert.True(t, InRange("2024-03-01T00:00:00", "2024-03-01", "2024-03-31"))
}

func TestFormatSortable(t *testing.T) {
	// el zero-padding es lo que hace válida la comparación lexicográfica
	d := time.Date(2024, 1, 5, 9, 8, 7, 0, time.Local)
	assert.Equal(t, "2024-01-05", FormatDate(d))
	assert.Equal(t, "2024-01-05T09:08:07", FormatDateTime(d))
}
