package api

import (
	"fmt"
	"strconv"
	"time"

	"autogasto/database"
	"autogasto/models"
	"autogasto/service"

	"github.com/gin-gonic/gin"
)

// ReminderHandler maneja los recordatorios de mantenimiento
type ReminderHandler struct{}

// NewReminderHandler crea el handler de recordatorios
func NewReminderHandler() *ReminderHandler {
	return &ReminderHandler{}
}

// CreateReminderRequest petición de creación de recordatorio
type CreateReminderRequest struct {
	Type            string `json:"type" binding:"required,max=255" example:"maintenance"`
	Title           string `json:"title" binding:"required,max=255" example:"Cambio de aceite"`
	Description     string `json:"description" example:"Aceite sintético 5W-30"`
	DueDate         string `json:"due_date" binding:"required" example:"2025-10-01"`
	MileageInterval *int   `json:"mileage_interval" binding:"omitempty,gt=0" example:"5000"`
	CurrentMileage  *int   `json:"current_mileage" binding:"omitempty,gte=0" example:"45200"`
}

// UpdateReminderRequest petición de actualización parcial
type UpdateReminderRequest struct {
	Type            *string `json:"type" binding:"omitempty,max=255"`
	Title           *string `json:"title" binding:"omitempty,max=255"`
	Description     *string `json:"description"`
	DueDate         *string `json:"due_date"`
	IsCompleted     *bool   `json:"is_completed"`
	MileageInterval *int    `json:"mileage_interval" binding:"omitempty,gt=0"`
	CurrentMileage  *int    `json:"current_mileage" binding:"omitempty,gte=0"`
}

// List listado paginado de recordatorios
// @Summary Listar recordatorios
// @Tags recordatorios
// @Produce json
// @Param page query int false "Página" default(1)
// @Success 200 {object} Response{data=Page}
// @Router /reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	query := database.DB.Model(&models.Reminder{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, "Error al obtener los recordatorios", err)
		return
	}

	var reminders []models.Reminder
	if err := query.Order("due_date DESC, id DESC").
		Offset((page - 1) * PageSize).Limit(PageSize).
		Find(&reminders).Error; err != nil {
		InternalError(c, "Error al obtener los recordatorios", err)
		return
	}

	Success(c, "Recordatorios obtenidos exitosamente", NewPage(reminders, total, page))
}

// Create crea un recordatorio; la fecha límite debe ser futura
// @Summary Crear recordatorio
// @Tags recordatorios
// @Accept json
// @Produce json
// @Param request body CreateReminderRequest true "Recordatorio"
// @Success 201 {object} Response{data=models.Reminder}
// @Failure 422 {object} Response
// @Router /reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, BindingErrors(err))
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		ValidationError(c, map[string]string{"due_date": "El campo due_date debe ser una fecha válida (AAAA-MM-DD)"})
		return
	}
	// regla de creación, no invariante almacenada: un recordatorio puede
	// volverse vencido con el paso del tiempo
	if service.DaysBetween(time.Now(), dueDate) <= 0 {
		ValidationError(c, map[string]string{"due_date": "El campo due_date debe ser una fecha posterior a hoy"})
		return
	}

	reminder := models.Reminder{
		Type:            req.Type,
		Title:           req.Title,
		Description:     req.Description,
		DueDate:         dueDate,
		MileageInterval: req.MileageInterval,
		CurrentMileage:  req.CurrentMileage,
	}

	if err := database.DB.Create(&reminder).Error; err != nil {
		InternalError(c, "Error al crear el recordatorio", err)
		return
	}

	Created(c, "Recordatorio creado exitosamente", reminder)
}

// Get devuelve un recordatorio por id
// @Summary Obtener recordatorio
// @Tags recordatorios
// @Produce json
// @Param id path int true "ID del recordatorio"
// @Success 200 {object} Response{data=models.Reminder}
// @Failure 404 {object} Response
// @Router /reminders/{id} [get]
func (h *ReminderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Recordatorio no encontrado", err)
		return
	}

	var reminder models.Reminder
	if err := database.DB.First(&reminder, id).Error; err != nil {
		NotFound(c, "Recordatorio no encontrado", err)
		return
	}

	Success(c, "Recordatorio obtenido exitosamente", reminder)
}

// Update actualiza parcialmente un recordatorio. Cambiar la fecha
// límite no reinicia email_sent: el recordatorio no vuelve a notificarse.
// @Summary Actualizar recordatorio
// @Tags recordatorios
// @Accept json
// @Produce json
// @Param id path int true "ID del recordatorio"
// @Param request body UpdateReminderRequest true "Campos a actualizar"
// @Success 200 {object} Response{data=models.Reminder}
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /reminders/{id} [put]
func (h *ReminderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Recordatorio no encontrado", err)
		return
	}

	var reminder models.Reminder
	if err := database.DB.First(&reminder, id).Error; err != nil {
		NotFound(c, "Recordatorio no encontrado", err)
		return
	}

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, BindingErrors(err))
		return
	}

	updates := make(map[string]interface{})
	if req.Type != nil {
		if *req.Type == "" {
			ValidationError(c, map[string]string{"type": "El campo type es obligatorio"})
			return
		}
		updates["type"] = *req.Type
	}
	if req.Title != nil {
		if *req.Title == "" {
			ValidationError(c, map[string]string{"title": "El campo title es obligatorio"})
			return
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			ValidationError(c, map[string]string{"due_date": "El campo due_date debe ser una fecha válida (AAAA-MM-DD)"})
			return
		}
		updates["due_date"] = dueDate
	}
	if req.IsCompleted != nil {
		updates["is_completed"] = *req.IsCompleted
	}
	if req.MileageInterval != nil {
		updates["mileage_interval"] = *req.MileageInterval
	}
	if req.CurrentMileage != nil {
		updates["current_mileage"] = *req.CurrentMileage
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&reminder).Updates(updates).Error; err != nil {
			InternalError(c, "Error al actualizar el recordatorio", err)
			return
		}
	}

	database.DB.First(&reminder, reminder.ID)
	Success(c, "Recordatorio actualizado exitosamente", reminder)
}

// Delete elimina un recordatorio
// @Summary Eliminar recordatorio
// @Tags recordatorios
// @Produce json
// @Param id path int true "ID del recordatorio"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Recordatorio no encontrado", err)
		return
	}

	var reminder models.Reminder
	if err := database.DB.First(&reminder, id).Error; err != nil {
		NotFound(c, "Recordatorio no encontrado", err)
		return
	}

	if err := database.DB.Delete(&reminder).Error; err != nil {
		InternalError(c, "Error al eliminar el recordatorio", err)
		return
	}

	Success(c, "Recordatorio eliminado exitosamente", nil)
}

// Pending recordatorios no completados con conteos de vencidos y próximos
// @Summary Recordatorios pendientes
// @Tags recordatorios
// @Produce json
// @Success 200 {object} Response
// @Router /reminders/pending [get]
func (h *ReminderHandler) Pending(c *gin.Context) {
	now := time.Now()

	var pending []models.Reminder
	if err := database.DB.
		Where("is_completed = ?", false).
		Order("due_date ASC").
		Find(&pending).Error; err != nil {
		InternalError(c, "Error al obtener recordatorios pendientes", err)
		return
	}

	var overdueCount int64
	if err := database.DB.Model(&models.Reminder{}).
		Where("is_completed = ? AND due_date < ?", false, now).
		Count(&overdueCount).Error; err != nil {
		InternalError(c, "Error al obtener recordatorios pendientes", err)
		return
	}

	var upcomingCount int64
	if err := database.DB.Model(&models.Reminder{}).
		Where("is_completed = ? AND due_date >= ? AND due_date <= ?", false, now, now.AddDate(0, 0, 7)).
		Count(&upcomingCount).Error; err != nil {
		InternalError(c, "Error al obtener recordatorios pendientes", err)
		return
	}

	Success(c, "Recordatorios pendientes obtenidos exitosamente", gin.H{
		"reminders":      pending,
		"overdue_count":  overdueCount,
		"upcoming_count": upcomingCount,
		"total_pending":  len(pending),
	})
}

// Upcoming recordatorios próximos dentro de la ventana de días indicada
// @Summary Recordatorios próximos
// @Tags recordatorios
// @Produce json
// @Param days path int true "Días de anticipación"
// @Success 200 {object} Response{data=[]models.Reminder}
// @Router /reminders/upcoming/{days} [get]
func (h *ReminderHandler) Upcoming(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 0 {
		ValidationError(c, map[string]string{"days": "El campo days debe ser un entero no negativo"})
		return
	}

	now := time.Now()
	var reminders []models.Reminder
	if err := database.DB.
		Where("is_completed = ? AND due_date >= ? AND due_date <= ?", false, now, now.AddDate(0, 0, days)).
		Order("due_date ASC").
		Find(&reminders).Error; err != nil {
		InternalError(c, "Error al obtener recordatorios próximos", err)
		return
	}

	Success(c, fmt.Sprintf("Recordatorios próximos (próximos %d días) obtenidos exitosamente", days), reminders)
}

// Complete marca un recordatorio como completado. Completar uno ya
// completado no es un error.
// @Summary Completar recordatorio
// @Tags recordatorios
// @Produce json
// @Param id path int true "ID del recordatorio"
// @Success 200 {object} Response{data=models.Reminder}
// @Failure 404 {object} Response
// @Router /reminders/{id}/complete [put]
func (h *ReminderHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Recordatorio no encontrado", err)
		return
	}

	var reminder models.Reminder
	if err := database.DB.First(&reminder, id).Error; err != nil {
		NotFound(c, "Recordatorio no encontrado", err)
		return
	}

	if err := database.DB.Model(&reminder).Update("is_completed", true).Error; err != nil {
		InternalError(c, "Error al marcar recordatorio como completado", err)
		return
	}

	database.DB.First(&reminder, reminder.ID)
	Success(c, "Recordatorio marcado como completado", reminder)
}
