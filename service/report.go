package service

import (
	"fmt"
	"sort"
	"time"

	"autogasto/database"
	"autogasto/models"

	"github.com/shopspring/decimal"
)

// ReportService compone los reportes del dashboard a partir del motor
// de métricas y la base de datos
type ReportService struct{}

// NewReportService crea el servicio de reportes
func NewReportService() *ReportService {
	return &ReportService{}
}

// MonthTrendEntry monto de un mes dentro de la tendencia del dashboard
type MonthTrendEntry struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardData instantánea del dashboard
type DashboardData struct {
	TotalExpenses        decimal.Decimal            `json:"total_expenses"`
	MonthlyExpenses      decimal.Decimal            `json:"monthly_expenses"`
	FuelExpenses         decimal.Decimal            `json:"fuel_expenses"`
	MaintenanceExpenses  decimal.Decimal            `json:"maintenance_expenses"`
	PendingReminders     int64                      `json:"pending_reminders"`
	OverdueReminders     int64                      `json:"overdue_reminders"`
	RecentFuelRecords    []models.FuelRecord        `json:"recent_fuel_records"`
	RecentExpenses       []models.Expense           `json:"recent_expenses"`
	FuelEfficiency       decimal.Decimal            `json:"fuel_efficiency"`
	AverageCostPerGallon decimal.Decimal            `json:"average_cost_per_gallon"`
	ExpensesByCategory   map[string]decimal.Decimal `json:"expenses_by_category"`
	MonthlyTrend         []MonthTrendEntry          `json:"monthly_trend"`
}

// monthBounds rango [inicio de mes, inicio del mes siguiente)
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

// yearBounds rango [1 de enero, 1 de enero del año siguiente)
func yearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(1, 0, 0)
}

// expenseSumInMonth suma de gastos del mes vía SQL
func expenseSumInMonth(year int, month time.Month) (decimal.Decimal, error) {
	start, end := monthBounds(year, month)
	var total decimal.Decimal
	err := database.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("date >= ? AND date < ?", start, end).
		Scan(&total).Error
	return total, err
}

// Dashboard arma la instantánea del dashboard al momento now
func (s *ReportService) Dashboard(now time.Time) (*DashboardData, error) {
	data := &DashboardData{}

	if err := database.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&data.TotalExpenses).Error; err != nil {
		return nil, err
	}

	var err error
	if data.MonthlyExpenses, err = expenseSumInMonth(now.Year(), now.Month()); err != nil {
		return nil, err
	}

	if err := database.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("category = ?", models.CategoryFuel).
		Scan(&data.FuelExpenses).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("category = ?", models.CategoryMaintenance).
		Scan(&data.MaintenanceExpenses).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Model(&models.Reminder{}).
		Where("is_completed = ?", false).
		Count(&data.PendingReminders).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Reminder{}).
		Where("is_completed = ? AND due_date < ?", false, now).
		Count(&data.OverdueReminders).Error; err != nil {
		return nil, err
	}

	if err := database.DB.Order("date DESC, id DESC").Limit(5).
		Find(&data.RecentFuelRecords).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Order("date DESC, id DESC").Limit(5).
		Find(&data.RecentExpenses).Error; err != nil {
		return nil, err
	}

	var fuelRecords []models.FuelRecord
	if err := database.DB.Find(&fuelRecords).Error; err != nil {
		return nil, err
	}
	data.FuelEfficiency = FuelEfficiency(fuelRecords).Round(2)

	if err := database.DB.Model(&models.FuelRecord{}).
		Select("COALESCE(AVG(price_per_gallon), 0)").
		Scan(&data.AverageCostPerGallon).Error; err != nil {
		return nil, err
	}
	data.AverageCostPerGallon = data.AverageCostPerGallon.Round(2)

	type categoryRow struct {
		Category string
		Total    decimal.Decimal
	}
	var rows []categoryRow
	if err := database.DB.Model(&models.Expense{}).
		Select("category, SUM(amount) as total").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	data.ExpensesByCategory = make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		data.ExpensesByCategory[row.Category] = row.Total
	}

	// tendencia de los últimos 6 meses, del más antiguo al actual.
	// Se parte del primero del mes: restar meses desde un fin de mes
	// desborda en los meses cortos y saltaría o duplicaría meses.
	data.MonthlyTrend = make([]MonthTrendEntry, 0, 6)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	for i := 5; i >= 0; i-- {
		m := firstOfMonth.AddDate(0, -i, 0)
		amount, err := expenseSumInMonth(m.Year(), m.Month())
		if err != nil {
			return nil, err
		}
		data.MonthlyTrend = append(data.MonthlyTrend, MonthTrendEntry{
			Month:  m.Format("Jan 2006"),
			Amount: amount,
		})
	}

	return data, nil
}

// MonthlyExpenseSection gastos dentro del reporte mensual
type MonthlyExpenseSection struct {
	Total      decimal.Decimal            `json:"total"`
	Count      int                        `json:"count"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	Details    []models.Expense           `json:"details"`
}

// MonthlyFuelSection combustible dentro del reporte mensual
type MonthlyFuelSection struct {
	TotalCost    decimal.Decimal     `json:"total_cost"`
	TotalGallons decimal.Decimal     `json:"total_gallons"`
	AveragePrice decimal.Decimal     `json:"average_price"`
	RecordsCount int                 `json:"records_count"`
	Details      []models.FuelRecord `json:"details"`
}

// MonthlyReminderSection recordatorios dentro del reporte mensual
type MonthlyReminderSection struct {
	Total     int               `json:"total"`
	Completed int               `json:"completed"`
	Pending   int               `json:"pending"`
	Details   []models.Reminder `json:"details"`
}

// MonthlyReport reporte mensual completo
type MonthlyReport struct {
	Period    string                 `json:"period"`
	Expenses  MonthlyExpenseSection  `json:"expenses"`
	Fuel      MonthlyFuelSection     `json:"fuel"`
	Reminders MonthlyReminderSection `json:"reminders"`
}

// Monthly genera el reporte del mes indicado
func (s *ReportService) Monthly(year int, month time.Month) (*MonthlyReport, error) {
	start, end := monthBounds(year, month)

	var expenses []models.Expense
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	var fuelRecords []models.FuelRecord
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&fuelRecords).Error; err != nil {
		return nil, err
	}

	var reminders []models.Reminder
	if err := database.DB.
		Where("due_date >= ? AND due_date < ?", start, end).
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	completed := 0
	for _, r := range reminders {
		if r.IsCompleted {
			completed++
		}
	}

	totalCost := SumFuelCosts(fuelRecords)
	totalGallons := SumGallons(fuelRecords)
	averagePrice := decimal.Zero
	if totalGallons.IsPositive() {
		averagePrice = totalCost.Div(totalGallons).Round(2)
	}

	return &MonthlyReport{
		Period: fmt.Sprintf("%d/%d", int(month), year),
		Expenses: MonthlyExpenseSection{
			Total:      SumExpensesWhere(expenses, nil),
			Count:      len(expenses),
			ByCategory: GroupExpensesByCategory(expenses),
			Details:    expenses,
		},
		Fuel: MonthlyFuelSection{
			TotalCost:    totalCost,
			TotalGallons: totalGallons,
			AveragePrice: averagePrice,
			RecordsCount: len(fuelRecords),
			Details:      fuelRecords,
		},
		Reminders: MonthlyReminderSection{
			Total:     len(reminders),
			Completed: completed,
			Pending:   len(reminders) - completed,
			Details:   reminders,
		},
	}, nil
}

// MonthAmount monto de un mes en el desglose anual
type MonthAmount struct {
	Month     int             `json:"month"`
	MonthName string          `json:"month_name"`
	Amount    decimal.Decimal `json:"amount"`
}

// CategoryTotal total de una categoría, para listados ordenados
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// sortedCategoryTotals totales por categoría ordenados de mayor a menor
func sortedCategoryTotals(totals map[string]decimal.Decimal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total.Equal(out[j].Total) {
			return out[i].Category < out[j].Category
		}
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// YearlySummary totales del reporte anual
type YearlySummary struct {
	TotalExpenses         decimal.Decimal `json:"total_expenses"`
	TotalFuelCost         decimal.Decimal `json:"total_fuel_cost"`
	TotalGallons          decimal.Decimal `json:"total_gallons"`
	AverageMonthlyExpense decimal.Decimal `json:"average_monthly_expense"`
	FuelEfficiency        decimal.Decimal `json:"fuel_efficiency"`
}

// YearlyReminderSection recordatorios dentro del reporte anual
type YearlyReminderSection struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// YearlyReport reporte anual completo
type YearlyReport struct {
	Year               int                   `json:"year"`
	Summary            YearlySummary         `json:"summary"`
	MonthlyExpenses    []MonthAmount         `json:"monthly_expenses"`
	ExpensesByCategory []CategoryTotal       `json:"expenses_by_category"`
	Reminders          YearlyReminderSection `json:"reminders"`
}

// Yearly genera el reporte del año indicado. La eficiencia de
// combustible se calcula sobre todos los registros históricos, no sólo
// los del año: es el comportamiento original y se conserva a propósito.
func (s *ReportService) Yearly(year int) (*YearlyReport, error) {
	start, end := yearBounds(year)

	var expenses []models.Expense
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	var fuelRecords []models.FuelRecord
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		Find(&fuelRecords).Error; err != nil {
		return nil, err
	}

	var allFuelRecords []models.FuelRecord
	if err := database.DB.Find(&allFuelRecords).Error; err != nil {
		return nil, err
	}

	var reminders []models.Reminder
	if err := database.DB.
		Where("due_date >= ? AND due_date < ?", start, end).
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	completed := 0
	for _, r := range reminders {
		if r.IsCompleted {
			completed++
		}
	}

	totalExpenses := SumExpensesWhere(expenses, nil)

	// desglose mensual: los meses sin datos aparecen con 0
	monthly := make([]MonthAmount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		month := m
		monthly = append(monthly, MonthAmount{
			Month:     int(month),
			MonthName: month.String()[:3],
			Amount: SumExpensesWhere(expenses, func(e models.Expense) bool {
				return InMonth(e.Date, year, month)
			}),
		})
	}

	byCategory := sortedCategoryTotals(GroupExpensesByCategory(expenses))

	return &YearlyReport{
		Year: year,
		Summary: YearlySummary{
			TotalExpenses:         totalExpenses,
			TotalFuelCost:         SumFuelCosts(fuelRecords),
			TotalGallons:          SumGallons(fuelRecords),
			AverageMonthlyExpense: totalExpenses.Div(decimal.NewFromInt(12)).Round(2),
			FuelEfficiency:        FuelEfficiency(allFuelRecords).Round(2),
		},
		MonthlyExpenses:    monthly,
		ExpensesByCategory: byCategory,
		Reminders: YearlyReminderSection{
			Total:     len(reminders),
			Completed: completed,
			Pending:   len(reminders) - completed,
		},
	}, nil
}
