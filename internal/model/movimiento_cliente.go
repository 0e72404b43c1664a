package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento en la cuenta del cliente.
// venta: +total · devolucion: −monto · pago: −monto · ajuste: ±monto
const (
	MovimientoVenta      = "venta"
	MovimientoDevolucion = "devolucion"
	MovimientoPago       = "pago"
	MovimientoAjuste     = "ajuste"
)

// MovimientoCliente is an immutable entry in a customer's account.
// The balance is never stored; it is the ordered sum of Monto.
type MovimientoCliente struct {
	ID           uint            `gorm:"primaryKey"`
	FechaHora    time.Time       `gorm:"not null;index"`
	ClienteID    uint            `gorm:"not null;index"`
	Tipo         string          `gorm:"type:varchar(20);not null"`
	ReferenciaID uint            `gorm:"not null;default:0"` // venta, devolucion or manual reference
	Monto        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (MovimientoCliente) TableName() string { return "movimientos_cliente" }
