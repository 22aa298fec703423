package api

import (
	"fmt"
	"strconv"
	"time"

	"autogasto/database"
	"autogasto/models"
	"autogasto/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// dateLayout formato de fecha aceptado en las peticiones
const dateLayout = "2006-01-02"

// parseDate interpreta una fecha AAAA-MM-DD en hora local
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

// ExpenseHandler maneja los gastos del vehículo
type ExpenseHandler struct{}

// NewExpenseHandler crea el handler de gastos
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest petición de creación de gasto
type CreateExpenseRequest struct {
	Category    string   `json:"category" binding:"required,max=255" example:"Combustible"`
	Amount      *float64 `json:"amount" binding:"required,gte=0" example:"45.50"`
	Description string   `json:"description" binding:"required" example:"Tanque lleno"`
	Date        string   `json:"date" binding:"required" example:"2025-08-15"`
	Mileage     *int     `json:"mileage" binding:"omitempty,gte=0" example:"45200"`
}

// UpdateExpenseRequest petición de actualización parcial de gasto
type UpdateExpenseRequest struct {
	Category    *string  `json:"category" binding:"omitempty,max=255"`
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Mileage     *int     `json:"mileage" binding:"omitempty,gte=0"`
}

// List listado paginado de gastos
// @Summary Listar gastos
// @Description Lista los gastos ordenados por fecha descendente, 15 por página
// @Tags gastos
// @Produce json
// @Param page query int false "Página" default(1)
// @Success 200 {object} Response{data=Page}
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	query := database.DB.Model(&models.Expense{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, "Error al obtener los gastos", err)
		return
	}

	var expenses []models.Expense
	if err := query.Order("date DESC, id DESC").
		Offset((page - 1) * PageSize).Limit(PageSize).
		Find(&expenses).Error; err != nil {
		InternalError(c, "Error al obtener los gastos", err)
		return
	}

	Success(c, "Gastos obtenidos exitosamente", NewPage(expenses, total, page))
}

// Create crea un gasto
// @Summary Crear gasto
// @Tags gastos
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "Gasto"
// @Success 201 {object} Response{data=models.Expense}
// @Failure 422 {object} Response
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, BindingErrors(err))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ValidationError(c, map[string]string{"date": "El campo date debe ser una fecha válida (AAAA-MM-DD)"})
		return
	}

	expense := models.Expense{
		Category:    req.Category,
		Amount:      decimal.NewFromFloat(*req.Amount),
		Description: req.Description,
		Date:        date,
		Mileage:     req.Mileage,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, "Error al crear el gasto", err)
		return
	}

	Created(c, "Gasto creado exitosamente", expense)
}

// Get devuelve un gasto por id
// @Summary Obtener gasto
// @Tags gastos
// @Produce json
// @Param id path int true "ID del gasto"
// @Success 200 {object} Response{data=models.Expense}
// @Failure 404 {object} Response
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Gasto no encontrado", err)
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "Gasto no encontrado", err)
		return
	}

	Success(c, "Gasto obtenido exitosamente", expense)
}

// Update actualiza parcialmente un gasto
// @Summary Actualizar gasto
// @Tags gastos
// @Accept json
// @Produce json
// @Param id path int true "ID del gasto"
// @Param request body UpdateExpenseRequest true "Campos a actualizar"
// @Success 200 {object} Response{data=models.Expense}
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Gasto no encontrado", err)
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "Gasto no encontrado", err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, BindingErrors(err))
		return
	}

	updates := make(map[string]interface{})
	if req.Category != nil {
		if *req.Category == "" {
			ValidationError(c, map[string]string{"category": "El campo category es obligatorio"})
			return
		}
		updates["category"] = *req.Category
	}
	if req.Amount != nil {
		updates["amount"] = decimal.NewFromFloat(*req.Amount)
	}
	if req.Description != nil {
		if *req.Description == "" {
			ValidationError(c, map[string]string{"description": "El campo description es obligatorio"})
			return
		}
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			ValidationError(c, map[string]string{"date": "El campo date debe ser una fecha válida (AAAA-MM-DD)"})
			return
		}
		updates["date"] = date
	}
	if req.Mileage != nil {
		updates["mileage"] = *req.Mileage
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
			InternalError(c, "Error al actualizar el gasto", err)
			return
		}
	}

	database.DB.First(&expense, expense.ID)
	Success(c, "Gasto actualizado exitosamente", expense)
}

// Delete elimina un gasto
// @Summary Eliminar gasto
// @Tags gastos
// @Produce json
// @Param id path int true "ID del gasto"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Gasto no encontrado", err)
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, id).Error; err != nil {
		NotFound(c, "Gasto no encontrado", err)
		return
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		InternalError(c, "Error al eliminar el gasto", err)
		return
	}

	Success(c, "Gasto eliminado exitosamente", nil)
}

// ByCategory listado paginado de gastos de una categoría
// @Summary Gastos por categoría
// @Tags gastos
// @Produce json
// @Param category path string true "Categoría"
// @Param page query int false "Página" default(1)
// @Success 200 {object} Response{data=Page}
// @Router /expenses/category/{category} [get]
func (h *ExpenseHandler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	query := database.DB.Model(&models.Expense{}).Where("category = ?", category)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, "Error al obtener gastos por categoría", err)
		return
	}

	var expenses []models.Expense
	if err := query.Order("date DESC, id DESC").
		Offset((page - 1) * PageSize).Limit(PageSize).
		Find(&expenses).Error; err != nil {
		InternalError(c, "Error al obtener gastos por categoría", err)
		return
	}

	Success(c, fmt.Sprintf("Gastos de la categoría %s obtenidos exitosamente", category),
		NewPage(expenses, total, page))
}

// Monthly gastos de un mes con totales
// @Summary Gastos mensuales
// @Tags gastos
// @Produce json
// @Param year path int true "Año"
// @Param month path int true "Mes (1-12)"
// @Success 200 {object} Response
// @Router /expenses/monthly/{year}/{month} [get]
func (h *ExpenseHandler) Monthly(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var expenses []models.Expense
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		InternalError(c, "Error al obtener gastos mensuales", err)
		return
	}

	Success(c, fmt.Sprintf("Gastos de %d/%d obtenidos exitosamente", int(month), year), gin.H{
		"expenses":        expenses,
		"total":           service.SumExpensesWhere(expenses, nil),
		"category_totals": service.GroupExpensesByCategory(expenses),
		"count":           len(expenses),
	})
}

// parseYear valida el parámetro de ruta year
func parseYear(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		ValidationError(c, map[string]string{"year": "El campo year debe ser un año válido"})
		return 0, false
	}
	return year, true
}

// parseYearMonth valida los parámetros de ruta year/month
func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	year, ok := parseYear(c)
	if !ok {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		ValidationError(c, map[string]string{"month": "El campo month debe estar entre 1 y 12"})
		return 0, 0, false
	}
	return year, time.Month(month), true
}
