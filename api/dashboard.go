package api

import (
	"fmt"
	"time"

	"autogasto/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler expone los reportes agregados
type DashboardHandler struct {
	reports *service.ReportService
}

// NewDashboardHandler crea el handler del dashboard
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{reports: service.NewReportService()}
}

// Index instantánea del dashboard
// @Summary Dashboard
// @Description Totales, recordatorios, registros recientes, eficiencia y tendencia de 6 meses
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=service.DashboardData}
// @Router /dashboard [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	data, err := h.reports.Dashboard(time.Now())
	if err != nil {
		InternalError(c, "Error al obtener datos del dashboard", err)
		return
	}

	Success(c, "Datos del dashboard obtenidos exitosamente", data)
}

// MonthlyReport reporte mensual
// @Summary Reporte mensual
// @Tags dashboard
// @Produce json
// @Param year path int true "Año"
// @Param month path int true "Mes (1-12)"
// @Success 200 {object} Response{data=service.MonthlyReport}
// @Router /dashboard/monthly-report/{year}/{month} [get]
func (h *DashboardHandler) MonthlyReport(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	report, err := h.reports.Monthly(year, month)
	if err != nil {
		InternalError(c, "Error al generar reporte mensual", err)
		return
	}

	Success(c, fmt.Sprintf("Reporte mensual de %d/%d generado exitosamente", int(month), year), report)
}

// YearlyReport reporte anual
// @Summary Reporte anual
// @Tags dashboard
// @Produce json
// @Param year path int true "Año"
// @Success 200 {object} Response{data=service.YearlyReport}
// @Router /dashboard/yearly-report/{year} [get]
func (h *DashboardHandler) YearlyReport(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}

	report, err := h.reports.Yearly(year)
	if err != nil {
		InternalError(c, "Error al generar reporte anual", err)
		return
	}

	Success(c, fmt.Sprintf("Reporte anual de %d generado exitosamente", year), report)
}
