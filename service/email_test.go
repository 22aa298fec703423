package service

import (
	"testing"
	"time"

	"autogasto/config"
	"autogasto/models"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestReminderSubject(t *testing.T) {
	r := models.Reminder{Title: "Cambio de aceite"}

	assert.Equal(t, "🚨 Recordatorio Vencido: Cambio de aceite", reminderSubject(r, StatusOverdue))
	assert.Equal(t, "⏰ Recordatorio Próximo: Cambio de aceite", reminderSubject(r, StatusUpcoming))
}

func TestReminderStatusLine(t *testing.T) {
	assert.Equal(t, "vencido hace 3 días", reminderStatusLine(-3))
	assert.Equal(t, "vence en 5 días", reminderStatusLine(5))
	assert.Equal(t, "vence en 0 días", reminderStatusLine(0))
}

func TestGenerateReminderBody(t *testing.T) {
	s := newTestEmailService()
	r := models.Reminder{
		Type:        "maintenance",
		Title:       "Cambio de aceite",
		Description: "Aceite sintético 5W-30",
		DueDate:     time.Date(2025, time.October, 1, 0, 0, 0, 0, time.Local),
	}

	body := s.generateReminderBody(r, StatusUpcoming, 5)
	assert.Contains(t, body, "Cambio de aceite")
	assert.Contains(t, body, "Aceite sintético 5W-30")
	assert.Contains(t, body, "vence en 5 días")
	assert.Contains(t, body, "2025-10-01")

	body = s.generateReminderBody(r, StatusOverdue, -3)
	assert.Contains(t, body, "🚨 Recordatorio Vencido")
	assert.Contains(t, body, "vencido hace 3 días")
}

func TestSendReminderEmail_Disabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendReminderEmail(models.Reminder{Title: "x"}, StatusUpcoming, 1)
	assert.Error(t, err)
}
