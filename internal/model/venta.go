package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago.
const (
	PagoEfectivo       = "efectivo"
	PagoTarjeta        = "tarjeta"
	PagoCreditoCliente = "credito_cliente"
)

// Venta is a settled ticket. PrecioPorKg is frozen at settlement time and
// is reused to value returns against this sale.
type Venta struct {
	ID          uint            `gorm:"primaryKey"`
	FechaHora   time.Time       `gorm:"not null;index"`
	BoletaID    uint            `gorm:"not null;uniqueIndex"`
	ClienteID   *uint           `gorm:"index"`
	ProductoID  uint            `gorm:"not null"`
	PesoNetoKg  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioPorKg decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago  string          `gorm:"type:varchar(20);not null"`

	Boleta   *Boleta   `gorm:"foreignKey:BoletaID"`
	Cliente  *Cliente  `gorm:"foreignKey:ClienteID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Venta) TableName() string { return "ventas" }
