package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler_CSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns()).
			AddRow(1, "Combustible", "45.50", "Tanque lleno",
				time.Date(2025, time.August, 15, 0, 0, 0, 0, time.Local), 45200, now, now))

	router := gin.New()
	router.GET("/export/expenses/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/expenses/csv?start_date=2025-08-01&end_date=2025-08-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "gastos_2025-08-01_2025-08-31.csv")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"), "el CSV debe empezar con BOM UTF-8")
	assert.Contains(t, body, "ID,Categoría,Monto,Descripción,Fecha,Kilometraje")
	assert.Contains(t, body, "1,Combustible,45.50,Tanque lleno,2025-08-15,45200")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_CSV_MissingRange(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/export/expenses/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/expenses/csv?start_date=2025-08-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 422, w.Code)
}

func TestExportHandler_CSV_InvalidDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/export/expenses/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/expenses/csv?start_date=01-08-2025&end_date=2025-08-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 422, w.Code)
	resp := decodeResponse(t, w)
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "start_date")
}

func TestExportHandler_Excel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns()).
			AddRow(1, "Combustible", "45.50", "Tanque lleno",
				time.Date(2025, time.August, 15, 0, 0, 0, 0, time.Local), nil, now, now))

	router := gin.New()
	router.GET("/export/expenses/excel", NewExportHandler().ExportExcel)

	req := httptest.NewRequest("GET", "/export/expenses/excel?start_date=2025-08-01&end_date=2025-08-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "gastos_2025-08-01_2025-08-31.xlsx")
	// los xlsx son archivos zip: empiezan con PK
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}
