package service

import (
	"fmt"
	"log"
	"time"

	"autogasto/database"
	"autogasto/models"
)

// ReminderNotifier job periódico que envía correos para recordatorios
// próximos o vencidos que aún no fueron notificados
type ReminderNotifier struct {
	mailer ReminderMailer
}

// NewReminderNotifier crea el notificador
func NewReminderNotifier(mailer ReminderMailer) *ReminderNotifier {
	return &ReminderNotifier{mailer: mailer}
}

// NotifyResult resumen de una corrida del notificador. Upcoming y
// Overdue cuentan recordatorios considerados; Sent cuenta envíos
// exitosos.
type NotifyResult struct {
	Sent     int `json:"sent"`
	Upcoming int `json:"upcoming"`
	Overdue  int `json:"overdue"`
}

// Run procesa una corrida: selecciona los recordatorios no completados y
// no notificados cuya fecha límite cae dentro de la ventana (o ya pasó),
// envía un correo por cada uno y marca email_sent sólo si el envío fue
// exitoso. Un fallo de envío se registra y la corrida continúa; el
// recordatorio queda para la próxima corrida.
func (n *ReminderNotifier) Run(now time.Time, windowDays int) (NotifyResult, error) {
	var result NotifyResult

	var reminders []models.Reminder
	if err := database.DB.
		Where("is_completed = ? AND email_sent = ? AND due_date <= ?",
			false, false, now.AddDate(0, 0, windowDays)).
		Find(&reminders).Error; err != nil {
		return result, fmt.Errorf("error consultando recordatorios: %w", err)
	}

	for _, r := range reminders {
		status, daysUntilDue := ClassifyReminder(r, now, windowDays)
		switch status {
		case StatusOverdue:
			result.Overdue++
		case StatusUpcoming:
			result.Upcoming++
		default:
			continue
		}

		if err := n.mailer.SendReminderEmail(r, status, daysUntilDue); err != nil {
			log.Printf("error enviando correo para %q: %v", r.Title, err)
			continue
		}

		// sólo se marca si seguía sin notificar, por si hay corridas solapadas
		if err := database.DB.Model(&models.Reminder{}).
			Where("id = ? AND email_sent = ?", r.ID, false).
			Update("email_sent", true).Error; err != nil {
			log.Printf("error marcando recordatorio %d como notificado: %v", r.ID, err)
			continue
		}

		result.Sent++
		log.Printf("correo enviado para: %s (%s)", r.Title, reminderStatusLine(daysUntilDue))
	}

	return result, nil
}
