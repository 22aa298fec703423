package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"autogasto/database"
	"autogasto/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exporta gastos a CSV y Excel
type ExportHandler struct{}

// NewExportHandler crea el handler de exportación
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRange lee y valida el rango de fechas de la query
func exportRange(c *gin.Context) ([]models.Expense, string, string, bool) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr == "" || endStr == "" {
		ValidationError(c, map[string]string{
			"start_date": "Los campos start_date y end_date son obligatorios",
		})
		return nil, "", "", false
	}

	start, err := parseDate(startStr)
	if err != nil {
		ValidationError(c, map[string]string{"start_date": "El campo start_date debe ser una fecha válida (AAAA-MM-DD)"})
		return nil, "", "", false
	}
	end, err := parseDate(endStr)
	if err != nil {
		ValidationError(c, map[string]string{"end_date": "El campo end_date debe ser una fecha válida (AAAA-MM-DD)"})
		return nil, "", "", false
	}
	end = end.AddDate(0, 0, 1)

	var expenses []models.Expense
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		InternalError(c, "Error al consultar los gastos", err)
		return nil, "", "", false
	}

	return expenses, startStr, endStr, true
}

// ExportCSV exporta los gastos de un rango de fechas como CSV
// @Summary Exportar gastos a CSV
// @Tags exportar
// @Produce text/csv
// @Param start_date query string true "Fecha inicial (AAAA-MM-DD)"
// @Param end_date query string true "Fecha final (AAAA-MM-DD)"
// @Success 200 {file} file "Archivo CSV"
// @Failure 422 {object} Response
// @Router /export/expenses/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, startStr, endStr, ok := exportRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM para que Excel detecte UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Categoría", "Monto", "Descripción", "Fecha", "Kilometraje"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "Error al generar el CSV", err)
		return
	}

	for _, e := range expenses {
		mileage := ""
		if e.Mileage != nil {
			mileage = fmt.Sprintf("%d", *e.Mileage)
		}
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Category,
			e.Amount.StringFixed(2),
			e.Description,
			e.Date.Format(dateLayout),
			mileage,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Error al generar el CSV", err)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Error al generar el CSV", err)
		return
	}

	filename := fmt.Sprintf("gastos_%s_%s.csv", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel exporta los gastos de un rango de fechas como Excel
// @Summary Exportar gastos a Excel
// @Tags exportar
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string true "Fecha inicial (AAAA-MM-DD)"
// @Param end_date query string true "Fecha final (AAAA-MM-DD)"
// @Success 200 {file} file "Archivo Excel"
// @Failure 422 {object} Response
// @Router /export/expenses/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	expenses, startStr, endStr, ok := exportRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Gastos"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "Categoría", "Monto", "Descripción", "Fecha", "Kilometraje"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	f.SetColWidth(sheet, "B", "D", 22)

	for row, e := range expenses {
		amount, _ := e.Amount.Float64()
		values := []interface{}{e.ID, e.Category, amount, e.Description, e.Date.Format(dateLayout)}
		if e.Mileage != nil {
			values = append(values, *e.Mileage)
		} else {
			values = append(values, "")
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "Error al generar el Excel", err)
		return
	}

	filename := fmt.Sprintf("gastos_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
