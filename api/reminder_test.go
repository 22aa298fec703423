package api

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reminderColumns() []string {
	return []string{"id", "type", "title", "description", "due_date", "is_completed",
		"email_sent", "mileage_interval", "current_mileage", "created_at", "updated_at"}
}

func TestReminderHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reminders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/reminders", NewReminderHandler().Create)

	body := `{"type":"maintenance","title":"Cambio de aceite","due_date":"2030-01-15"}`
	req := httptest.NewRequest("POST", "/reminders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Recordatorio creado exitosamente", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderHandler_Create_PastDueDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/reminders", NewReminderHandler().Create)

	body := `{"type":"maintenance","title":"Cambio de aceite","due_date":"2020-01-01"}`
	req := httptest.NewRequest("POST", "/reminders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 422, w.Code)
	resp := decodeResponse(t, w)
	errs := resp["errors"].(map[string]interface{})
	assert.Equal(t, "El campo due_date debe ser una fecha posterior a hoy", errs["due_date"])
}

func TestReminderHandler_Create_TodayIsRejected(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/reminders", NewReminderHandler().Create)

	today := time.Now().Format("2006-01-02")
	body := `{"type":"maintenance","title":"Cambio de aceite","due_date":"` + today + `"}`
	req := httptest.NewRequest("POST", "/reminders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 422, w.Code)
}

func TestReminderHandler_Complete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	due := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WillReturnRows(sqlmock.NewRows(reminderColumns()).
			AddRow(3, "maintenance", "Cambio de aceite", "", due, false, false, nil, nil, now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `reminders`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WillReturnRows(sqlmock.NewRows(reminderColumns()).
			AddRow(3, "maintenance", "Cambio de aceite", "", due, true, false, nil, nil, now, now))

	router := gin.New()
	router.PUT("/reminders/:id/complete", NewReminderHandler().Complete)

	req := httptest.NewRequest("PUT", "/reminders/3/complete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Recordatorio marcado como completado", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_completed"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// completar un recordatorio ya completado responde igual que la primera vez
func TestReminderHandler_Complete_Idempotent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	due := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WillReturnRows(sqlmock.NewRows(reminderColumns()).
			AddRow(3, "maintenance", "Cambio de aceite", "", due, true, false, nil, nil, now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `reminders`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WillReturnRows(sqlmock.NewRows(reminderColumns()).
			AddRow(3, "maintenance", "Cambio de aceite", "", due, true, false, nil, nil, now, now))

	router := gin.New()
	router.PUT("/reminders/:id/complete", NewReminderHandler().Complete)

	req := httptest.NewRequest("PUT", "/reminders/3/complete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_completed"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderHandler_Complete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WillReturnRows(sqlmock.NewRows(reminderColumns()))

	router := gin.New()
	router.PUT("/reminders/:id/complete", NewReminderHandler().Complete)

	req := httptest.NewRequest("PUT", "/reminders/99/complete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderHandler_Pending(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	overdue := now.AddDate(0, 0, -3)
	upcoming := now.AddDate(0, 0, 5)

	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WillReturnRows(sqlmock.NewRows(reminderColumns()).
			AddRow(1, "maintenance", "Cambio de aceite", "", overdue, false, false, nil, nil, now, now).
			AddRow(2, "insurance", "Renovar seguro", "", upcoming, false, false, nil, nil, now, now))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `reminders`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `reminders`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	router := gin.New()
	router.GET("/reminders/pending", NewReminderHandler().Pending)

	req := httptest.NewRequest("GET", "/reminders/pending", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["overdue_count"])
	assert.Equal(t, float64(1), data["upcoming_count"])
	assert.Equal(t, float64(2), data["total_pending"])
	assert.Len(t, data["reminders"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderHandler_Upcoming_InvalidDays(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/reminders/upcoming/:days", NewReminderHandler().Upcoming)

	req := httptest.NewRequest("GET", "/reminders/upcoming/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 422, w.Code)
}

func TestReminderHandler_Update_CannotTouchEmailSent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	due := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WillReturnRows(sqlmock.NewRows(reminderColumns()).
			AddRow(3, "maintenance", "Cambio de aceite", "", due, false, true, nil, nil, now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `reminders`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `reminders`").
		WillReturnRows(sqlmock.NewRows(reminderColumns()).
			AddRow(3, "maintenance", "Cambio de aceite", "", due.AddDate(0, 0, 30), false, true, nil, nil, now, now))

	router := gin.New()
	router.PUT("/reminders/:id", NewReminderHandler().Update)

	// email_sent no es un campo editable; cambiar la fecha no lo reinicia
	body := `{"due_date":"2025-10-31","email_sent":false}`
	req := httptest.NewRequest("PUT", "/reminders/3", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["email_sent"])
	require.NoError(t, mock.ExpectationsWereMet())
}
