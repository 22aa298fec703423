package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense registro de gasto del vehículo
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Category    string          `json:"category" gorm:"size:255;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Date        time.Time       `json:"date" gorm:"type:date;not null;index"`
	Mileage     *int            `json:"mileage"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName nombre de la tabla
func (Expense) TableName() string {
	return "expenses"
}

// Categorías fijas usadas por el dashboard
const (
	CategoryFuel        = "Combustible"
	CategoryMaintenance = "Mantenimiento"
)
