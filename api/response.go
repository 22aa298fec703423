package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response envoltura común de todas las respuestas
type Response struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// Page bloque de paginación para los listados
type Page struct {
	CurrentPage int         `json:"current_page"`
	Data        interface{} `json:"data"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
	LastPage    int         `json:"last_page"`
}

// PageSize tamaño de página de los listados
const PageSize = 15

// NewPage arma el bloque de paginación
func NewPage(list interface{}, total int64, page int) Page {
	lastPage := int((total + PageSize - 1) / PageSize)
	if lastPage < 1 {
		lastPage = 1
	}
	return Page{
		CurrentPage: page,
		Data:        list,
		PerPage:     PageSize,
		Total:       total,
		LastPage:    lastPage,
	}
}

// Success respuesta 200 con datos
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Created respuesta 201 con el recurso creado
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ValidationError respuesta 422 con errores por campo
func ValidationError(c *gin.Context, errors map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Success: false,
		Message: "Error de validación",
		Errors:  errors,
	})
}

// NotFound respuesta 404
func NotFound(c *gin.Context, message string, err error) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: message,
		Error:   SafeErrorMessage(err, message),
	})
}

// InternalError respuesta 500 con mensaje genérico más el diagnóstico
func InternalError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: message,
		Error:   SafeErrorMessage(err, message),
	})
}
