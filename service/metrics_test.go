package service

import (
	"testing"
	"time"

	"autogasto/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func fuelRecord(id uint, day time.Time, gallons float64, mileage int) models.FuelRecord {
	return models.FuelRecord{
		ID:      id,
		Date:    day,
		Gallons: decimal.NewFromFloat(gallons),
		Mileage: mileage,
	}
}

func TestFuelEfficiency(t *testing.T) {
	records := []models.FuelRecord{
		fuelRecord(1, date(2025, time.January, 1), 8, 100),
		fuelRecord(2, date(2025, time.February, 1), 10, 150),
		fuelRecord(3, date(2025, time.March, 1), 7.5, 225),
	}

	// media de (50/10, 75/7.5) = media de (5, 10) = 7.5
	eff := FuelEfficiency(records)
	assert.True(t, eff.Equal(decimal.RequireFromString("7.5")), "eficiencia esperada 7.5, fue %s", eff)
}

func TestFuelEfficiency_OrderIndependent(t *testing.T) {
	ordered := []models.FuelRecord{
		fuelRecord(1, date(2025, time.January, 1), 8, 100),
		fuelRecord(2, date(2025, time.February, 1), 10, 150),
		fuelRecord(3, date(2025, time.March, 1), 7.5, 225),
	}
	shuffled := []models.FuelRecord{ordered[2], ordered[0], ordered[1]}

	assert.True(t, FuelEfficiency(ordered).Equal(FuelEfficiency(shuffled)))
}

func TestFuelEfficiency_InsufficientData(t *testing.T) {
	assert.True(t, FuelEfficiency(nil).IsZero())
	assert.True(t, FuelEfficiency([]models.FuelRecord{
		fuelRecord(1, date(2025, time.January, 1), 10, 100),
	}).IsZero())
}

func TestFuelEfficiency_SkipsBadPairs(t *testing.T) {
	records := []models.FuelRecord{
		fuelRecord(1, date(2025, time.January, 1), 10, 500),
		// odómetro reiniciado: el par se descarta
		fuelRecord(2, date(2025, time.February, 1), 10, 100),
		fuelRecord(3, date(2025, time.March, 1), 10, 150),
		// galones en cero: el par se descarta
		fuelRecord(4, date(2025, time.April, 1), 0, 200),
	}

	// única muestra válida: (150-100)/10 = 5
	eff := FuelEfficiency(records)
	assert.True(t, eff.Equal(decimal.NewFromInt(5)), "eficiencia esperada 5, fue %s", eff)
}

func TestClassifyReminder_Overdue(t *testing.T) {
	now := time.Date(2025, time.August, 15, 12, 0, 0, 0, time.Local)
	r := models.Reminder{DueDate: date(2025, time.August, 12)}

	status, days := ClassifyReminder(r, now, 7)
	assert.Equal(t, StatusOverdue, status)
	assert.Equal(t, -3, days)
}

func TestClassifyReminder_UpcomingWindow(t *testing.T) {
	now := time.Date(2025, time.August, 15, 12, 0, 0, 0, time.Local)
	r := models.Reminder{DueDate: date(2025, time.August, 20)}

	status, days := ClassifyReminder(r, now, 7)
	assert.Equal(t, StatusUpcoming, status)
	assert.Equal(t, 5, days)

	// con ventana de 3 días el mismo recordatorio queda pendiente
	status, days = ClassifyReminder(r, now, 3)
	assert.Equal(t, StatusPending, status)
	assert.Equal(t, 5, days)
}

func TestClassifyReminder_CompletedIsTerminal(t *testing.T) {
	now := time.Date(2025, time.August, 15, 12, 0, 0, 0, time.Local)

	overdue := models.Reminder{DueDate: date(2025, time.January, 1), IsCompleted: true}
	status, _ := ClassifyReminder(overdue, now, 7)
	assert.Equal(t, StatusCompleted, status)

	future := models.Reminder{DueDate: date(2026, time.January, 1), IsCompleted: true}
	status, _ = ClassifyReminder(future, now, 7)
	assert.Equal(t, StatusCompleted, status)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 5, DaysBetween(date(2025, time.August, 15), date(2025, time.August, 20)))
	assert.Equal(t, -3, DaysBetween(date(2025, time.August, 15), date(2025, time.August, 12)))
	assert.Equal(t, 0, DaysBetween(
		time.Date(2025, time.August, 15, 23, 0, 0, 0, time.Local),
		time.Date(2025, time.August, 15, 1, 0, 0, 0, time.Local)))
	// cruza el cambio de horario de verano sin perder un día
	assert.Equal(t, 31, DaysBetween(date(2025, time.March, 15), date(2025, time.April, 15)))
}

func TestMonthlySumsAddUpToYearlyTotal(t *testing.T) {
	expenses := []models.Expense{
		{Category: "Combustible", Amount: decimal.RequireFromString("45.50"), Date: date(2025, time.January, 10)},
		{Category: "Combustible", Amount: decimal.RequireFromString("38.75"), Date: date(2025, time.January, 25)},
		{Category: "Mantenimiento", Amount: decimal.RequireFromString("120.00"), Date: date(2025, time.March, 2)},
		{Category: "Seguro", Amount: decimal.RequireFromString("300.10"), Date: date(2025, time.July, 1)},
		{Category: "Combustible", Amount: decimal.RequireFromString("41.05"), Date: date(2025, time.December, 31)},
	}

	var monthlySum decimal.Decimal
	for m := time.January; m <= time.December; m++ {
		month := m
		monthlySum = monthlySum.Add(SumExpensesWhere(expenses, func(e models.Expense) bool {
			return InMonth(e.Date, 2025, month)
		}))
	}

	yearly := SumExpensesWhere(expenses, func(e models.Expense) bool {
		return InYear(e.Date, 2025)
	})

	assert.True(t, monthlySum.Equal(yearly), "suma mensual %s != total anual %s", monthlySum, yearly)
	assert.True(t, yearly.Equal(decimal.RequireFromString("545.40")))
}

func TestGroupExpensesByCategory(t *testing.T) {
	expenses := []models.Expense{
		{Category: "Combustible", Amount: decimal.RequireFromString("40.00")},
		{Category: "Combustible", Amount: decimal.RequireFromString("10.50")},
		{Category: "Mantenimiento", Amount: decimal.RequireFromString("99.99")},
	}

	totals := GroupExpensesByCategory(expenses)
	assert.Len(t, totals, 2)
	assert.True(t, totals["Combustible"].Equal(decimal.RequireFromString("50.50")))
	assert.True(t, totals["Mantenimiento"].Equal(decimal.RequireFromString("99.99")))
}

func TestAveragePricePerGallon_EmptyIsZero(t *testing.T) {
	assert.True(t, AveragePricePerGallon(nil).IsZero())
}
