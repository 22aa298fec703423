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

// FuelRecordHandler maneja los registros de combustible
type FuelRecordHandler struct{}

// NewFuelRecordHandler crea el handler de combustible
func NewFuelRecordHandler() *FuelRecordHandler {
	return &FuelRecordHandler{}
}

// CreateFuelRecordRequest petición de creación de registro de combustible
type CreateFuelRecordRequest struct {
	Date           string   `json:"date" binding:"required" example:"2025-08-15"`
	Gallons        *float64 `json:"gallons" binding:"required,gte=0" example:"10.5"`
	Cost           *float64 `json:"cost" binding:"required,gte=0" example:"42.00"`
	Mileage        *int     `json:"mileage" binding:"required,gte=0" example:"45200"`
	GasStation     string   `json:"gas_station" binding:"omitempty,max=255" example:"Texaco"`
	PricePerGallon *float64 `json:"price_per_gallon" binding:"required,gte=0" example:"4.00"`
}

// UpdateFuelRecordRequest petición de actualización parcial
type UpdateFuelRecordRequest struct {
	Date           *string  `json:"date"`
	Gallons        *float64 `json:"gallons" binding:"omitempty,gte=0"`
	Cost           *float64 `json:"cost" binding:"omitempty,gte=0"`
	Mileage        *int     `json:"mileage" binding:"omitempty,gte=0"`
	GasStation     *string  `json:"gas_station" binding:"omitempty,max=255"`
	PricePerGallon *float64 `json:"price_per_gallon" binding:"omitempty,gte=0"`
}

// List listado paginado de registros de combustible
// @Summary Listar registros de combustible
// @Tags combustible
// @Produce json
// @Param page query int false "Página" default(1)
// @Success 200 {object} Response{data=Page}
// @Router /fuel-records [get]
func (h *FuelRecordHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	query := database.DB.Model(&models.FuelRecord{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, "Error al obtener los registros de combustible", err)
		return
	}

	var records []models.FuelRecord
	if err := query.Order("date DESC, id DESC").
		Offset((page - 1) * PageSize).Limit(PageSize).
		Find(&records).Error; err != nil {
		InternalError(c, "Error al obtener los registros de combustible", err)
		return
	}

	Success(c, "Registros de combustible obtenidos exitosamente", NewPage(records, total, page))
}

// Create crea un registro de combustible
// @Summary Crear registro de combustible
// @Tags combustible
// @Accept json
// @Produce json
// @Param request body CreateFuelRecordRequest true "Registro"
// @Success 201 {object} Response{data=models.FuelRecord}
// @Failure 422 {object} Response
// @Router /fuel-records [post]
func (h *FuelRecordHandler) Create(c *gin.Context) {
	var req CreateFuelRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, BindingErrors(err))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ValidationError(c, map[string]string{"date": "El campo date debe ser una fecha válida (AAAA-MM-DD)"})
		return
	}

	record := models.FuelRecord{
		Date:           date,
		Gallons:        decimal.NewFromFloat(*req.Gallons),
		Cost:           decimal.NewFromFloat(*req.Cost),
		Mileage:        *req.Mileage,
		GasStation:     req.GasStation,
		PricePerGallon: decimal.NewFromFloat(*req.PricePerGallon),
	}

	if err := database.DB.Create(&record).Error; err != nil {
		InternalError(c, "Error al crear el registro de combustible", err)
		return
	}

	Created(c, "Registro de combustible creado exitosamente", record)
}

// Get devuelve un registro por id
// @Summary Obtener registro de combustible
// @Tags combustible
// @Produce json
// @Param id path int true "ID del registro"
// @Success 200 {object} Response{data=models.FuelRecord}
// @Failure 404 {object} Response
// @Router /fuel-records/{id} [get]
func (h *FuelRecordHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Registro de combustible no encontrado", err)
		return
	}

	var record models.FuelRecord
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "Registro de combustible no encontrado", err)
		return
	}

	Success(c, "Registro de combustible obtenido exitosamente", record)
}

// Update actualiza parcialmente un registro
// @Summary Actualizar registro de combustible
// @Tags combustible
// @Accept json
// @Produce json
// @Param id path int true "ID del registro"
// @Param request body UpdateFuelRecordRequest true "Campos a actualizar"
// @Success 200 {object} Response{data=models.FuelRecord}
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /fuel-records/{id} [put]
func (h *FuelRecordHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Registro de combustible no encontrado", err)
		return
	}

	var record models.FuelRecord
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "Registro de combustible no encontrado", err)
		return
	}

	var req UpdateFuelRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, BindingErrors(err))
		return
	}

	updates := make(map[string]interface{})
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			ValidationError(c, map[string]string{"date": "El campo date debe ser una fecha válida (AAAA-MM-DD)"})
			return
		}
		updates["date"] = date
	}
	if req.Gallons != nil {
		updates["gallons"] = decimal.NewFromFloat(*req.Gallons)
	}
	if req.Cost != nil {
		updates["cost"] = decimal.NewFromFloat(*req.Cost)
	}
	if req.Mileage != nil {
		updates["mileage"] = *req.Mileage
	}
	if req.GasStation != nil {
		updates["gas_station"] = *req.GasStation
	}
	if req.PricePerGallon != nil {
		updates["price_per_gallon"] = decimal.NewFromFloat(*req.PricePerGallon)
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&record).Updates(updates).Error; err != nil {
			InternalError(c, "Error al actualizar el registro de combustible", err)
			return
		}
	}

	database.DB.First(&record, record.ID)
	Success(c, "Registro de combustible actualizado exitosamente", record)
}

// Delete elimina un registro
// @Summary Eliminar registro de combustible
// @Tags combustible
// @Produce json
// @Param id path int true "ID del registro"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /fuel-records/{id} [delete]
func (h *FuelRecordHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Registro de combustible no encontrado", err)
		return
	}

	var record models.FuelRecord
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "Registro de combustible no encontrado", err)
		return
	}

	if err := database.DB.Delete(&record).Error; err != nil {
		InternalError(c, "Error al eliminar el registro de combustible", err)
		return
	}

	Success(c, "Registro de combustible eliminado exitosamente", nil)
}

// Efficiency estadísticas de eficiencia de combustible
// @Summary Eficiencia de combustible
// @Description Eficiencia media (distancia por galón) sobre pares de cargas consecutivas
// @Tags combustible
// @Produce json
// @Success 200 {object} Response
// @Router /fuel-records/efficiency [get]
func (h *FuelRecordHandler) Efficiency(c *gin.Context) {
	var records []models.FuelRecord
	if err := database.DB.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		InternalError(c, "Error al obtener estadísticas de eficiencia", err)
		return
	}

	Success(c, "Estadísticas de eficiencia obtenidas exitosamente", gin.H{
		"efficiency":              service.FuelEfficiency(records).Round(2),
		"records":                 records,
		"average_cost_per_gallon": service.AveragePricePerGallon(records).Round(2),
		"total_spent":             service.SumFuelCosts(records),
		"total_gallons":           service.SumGallons(records),
		"records_count":           len(records),
	})
}

// Monthly registros de combustible de un mes con totales
// @Summary Combustible mensual
// @Tags combustible
// @Produce json
// @Param year path int true "Año"
// @Param month path int true "Mes (1-12)"
// @Success 200 {object} Response
// @Router /fuel-records/monthly/{year}/{month} [get]
func (h *FuelRecordHandler) Monthly(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var records []models.FuelRecord
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, id DESC").
		Find(&records).Error; err != nil {
		InternalError(c, "Error al obtener registros mensuales de combustible", err)
		return
	}

	Success(c, fmt.Sprintf("Registros de combustible de %d/%d obtenidos exitosamente", int(month), year), gin.H{
		"records":       records,
		"total":         service.SumFuelCosts(records),
		"total_gallons": service.SumGallons(records),
		"average_price": service.AveragePricePerGallon(records).Round(2),
		"count":         len(records),
	})
}
