package models

import (
	"time"
)

// Reminder recordatorio de mantenimiento u otro evento del vehículo.
// is_completed y email_sent son banderas independientes: un recordatorio
// puede completarse sin haber sido notificado por correo.
type Reminder struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Type            string    `json:"type" gorm:"size:255;not null"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Description     string    `json:"description" gorm:"type:text"`
	DueDate         time.Time `json:"due_date" gorm:"type:date;not null;index"`
	IsCompleted     bool      `json:"is_completed" gorm:"default:false"`
	EmailSent       bool      `json:"email_sent" gorm:"default:false"`
	MileageInterval *int      `json:"mileage_interval"`
	CurrentMileage  *int      `json:"current_mileage"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName nombre de la tabla
func (Reminder) TableName() string {
	return "reminders"
}
