package service

import (
	"sort"
	"time"

	"autogasto/models"

	"github.com/shopspring/decimal"
)

// ReminderStatus clasificación de un recordatorio respecto a su fecha límite
type ReminderStatus string

const (
	StatusCompleted ReminderStatus = "completed"
	StatusOverdue   ReminderStatus = "overdue"
	StatusUpcoming  ReminderStatus = "upcoming"
	StatusPending   ReminderStatus = "pending"
)

// DaysBetween diferencia en días calendario con signo entre dos fechas.
// Se normalizan ambas a medianoche UTC para que el resultado sea estable
// ante cambios de horario de verano.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// ClassifyReminder clasifica un recordatorio y devuelve los días hasta su
// vencimiento (negativos si ya venció). Un recordatorio completado es
// terminal: ninguna otra clasificación aplica. windowDays define la
// ventana de "próximo".
func ClassifyReminder(r models.Reminder, now time.Time, windowDays int) (ReminderStatus, int) {
	days := DaysBetween(now, r.DueDate)
	if r.IsCompleted {
		return StatusCompleted, days
	}
	if r.DueDate.Before(now) {
		return StatusOverdue, days
	}
	if !r.DueDate.After(now.AddDate(0, 0, windowDays)) {
		return StatusUpcoming, days
	}
	return StatusPending, days
}

// FuelEfficiency eficiencia media de combustible (distancia por galón).
// Ordena por fecha (desempate por id para que el resultado sea
// reproducible) y toma cada par consecutivo con distancia positiva y
// galones positivos como una muestra. Devuelve 0 sin muestras: los
// consumidores deben tratarlo como "datos insuficientes".
func FuelEfficiency(records []models.FuelRecord) decimal.Decimal {
	sorted := make([]models.FuelRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var sum decimal.Decimal
	samples := 0
	for i := 1; i < len(sorted); i++ {
		distance := sorted[i].Mileage - sorted[i-1].Mileage
		// un odómetro reiniciado o dos cargas el mismo día descartan el par
		if distance > 0 && sorted[i].Gallons.IsPositive() {
			sum = sum.Add(decimal.NewFromInt(int64(distance)).Div(sorted[i].Gallons))
			samples++
		}
	}

	if samples == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(samples)))
}

// InMonth indica si la fecha cae en el año y mes dados
func InMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// InYear indica si la fecha cae en el año dado
func InYear(t time.Time, year int) bool {
	return t.Year() == year
}

// SumExpensesWhere suma los montos de los gastos que cumplen el
// predicado; con predicado nil suma todos. La acumulación es decimal,
// el redondeo a 2 dígitos ocurre sólo en la presentación.
func SumExpensesWhere(expenses []models.Expense, keep func(models.Expense) bool) decimal.Decimal {
	var sum decimal.Decimal
	for _, e := range expenses {
		if keep == nil || keep(e) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// GroupExpensesByCategory totales por categoría
func GroupExpensesByCategory(expenses []models.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// SumFuelCosts suma de costos de los registros de combustible
func SumFuelCosts(records []models.FuelRecord) decimal.Decimal {
	var sum decimal.Decimal
	for _, r := range records {
		sum = sum.Add(r.Cost)
	}
	return sum
}

// SumGallons suma de galones de los registros de combustible
func SumGallons(records []models.FuelRecord) decimal.Decimal {
	var sum decimal.Decimal
	for _, r := range records {
		sum = sum.Add(r.Gallons)
	}
	return sum
}

// AveragePricePerGallon promedio del precio por galón; 0 con lista vacía
func AveragePricePerGallon(records []models.FuelRecord) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	var sum decimal.Decimal
	for _, r := range records {
		sum = sum.Add(r.PricePerGallon)
	}
	return sum.Div(decimal.NewFromInt(int64(len(records))))
}
