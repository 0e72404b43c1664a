package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Devolucion is merchandise returned against a prior sale.
type Devolucion struct {
	ID             uint            `gorm:"primaryKey"`
	FechaHora      time.Time       `gorm:"not null"`
	VentaID        uint            `gorm:"not null;index"`
	ClienteID      *uint           `gorm:"index"`
	PesoDevueltoKg decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	MontoDevuelto  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Motivo         string
}

func (Devolucion) TableName() string { return "devoluciones" }
