package service

import (
	"fmt"

	"autogasto/config"
	"autogasto/models"

	"gopkg.in/gomail.v2"
)

// ReminderMailer transporte de correo para las notificaciones de
// recordatorios. El notificador sólo depende de esta interfaz.
type ReminderMailer interface {
	SendReminderEmail(r models.Reminder, status ReminderStatus, daysUntilDue int) error
}

// EmailService servicio de correo basado en SMTP
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService crea el servicio de correo
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendReminderEmail envía la notificación de un recordatorio al
// destinatario configurado
func (s *EmailService) SendReminderEmail(r models.Reminder, status ReminderStatus, daysUntilDue int) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("servicio de correo deshabilitado, configurar email.enabled=true")
	}

	subject := reminderSubject(r, status)
	body := s.generateReminderBody(r, status, daysUntilDue)

	return s.sendEmail(s.cfg.Recipient, subject, body)
}

// reminderSubject asunto según la clasificación del recordatorio
func reminderSubject(r models.Reminder, status ReminderStatus) string {
	if status == StatusOverdue {
		return fmt.Sprintf("🚨 Recordatorio Vencido: %s", r.Title)
	}
	return fmt.Sprintf("⏰ Recordatorio Próximo: %s", r.Title)
}

// reminderStatusLine texto humano del estado de vencimiento
func reminderStatusLine(daysUntilDue int) string {
	if daysUntilDue < 0 {
		return fmt.Sprintf("vencido hace %d días", -daysUntilDue)
	}
	return fmt.Sprintf("vence en %d días", daysUntilDue)
}

// generateReminderBody genera el cuerpo HTML de la notificación
func (s *EmailService) generateReminderBody(r models.Reminder, status ReminderStatus, daysUntilDue int) string {
	headline := "⏰ Recordatorio Próximo"
	color := "#2563eb"
	if status == StatusOverdue {
		headline = "🚨 Recordatorio Vencido"
		color = "#dc2626"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
        .header { background: %s; color: white; padding: 24px; text-align: center; }
        .header h1 { margin: 0; font-size: 22px; }
        .content { padding: 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 16px; }
        .status { background: #fff3cd; border-left: 4px solid #ffc107; padding: 12px; border-radius: 4px; }
        .footer { background: #f8f9fa; padding: 16px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>%s</h1>
        </div>
        <div class="content">
            <p><strong>%s</strong> (%s)</p>
            <p>%s</p>
            <div class="status">
                <p>Este recordatorio %s (fecha límite: %s).</p>
            </div>
        </div>
        <div class="footer">
            <p>Correo automático de AutoGasto, no responder</p>
        </div>
    </div>
</body>
</html>
`, color, headline, r.Title, r.Type, r.Description, reminderStatusLine(daysUntilDue), r.DueDate.Format("2006-01-02"))
}

// sendEmail envía un correo por SMTP
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error enviando correo: %w", err)
	}

	return nil
}
