package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelRecord registro de carga de combustible
type FuelRecord struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Date           time.Time       `json:"date" gorm:"type:date;not null;index"`
	Gallons        decimal.Decimal `json:"gallons" gorm:"type:decimal(8,2);not null"`
	Cost           decimal.Decimal `json:"cost" gorm:"type:decimal(10,2);not null"`
	Mileage        int             `json:"mileage" gorm:"not null"` // lectura del odómetro al llenar
	GasStation     string          `json:"gas_station" gorm:"size:255"`
	PricePerGallon decimal.Decimal `json:"price_per_gallon" gorm:"type:decimal(8,2);not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName nombre de la tabla
func (FuelRecord) TableName() string {
	return "fuel_records"
}
