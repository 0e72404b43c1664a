package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de boleta: "abierta" → "cerrada", one way only.
const (
	BoletaAbierta = "abierta"
	BoletaCerrada = "cerrada"
)

// Boleta is a weighing ticket: the gross weight of a batch before settlement.
type Boleta struct {
	ID          uint            `gorm:"primaryKey"`
	FechaHora   time.Time       `gorm:"not null;index"`
	ClienteID   *uint           `gorm:"index"`
	ProductoID  uint            `gorm:"not null"`
	TipoVenta   string          `gorm:"type:varchar(10);not null"`
	NumPollos   int             `gorm:"not null"`
	NumCajas    int             `gorm:"not null"`
	PesoTotalKg decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Comentarios string
	Estado      string `gorm:"type:varchar(10);not null;default:'abierta';index"`

	Cliente  *Cliente        `gorm:"foreignKey:ClienteID"`
	Producto *Producto       `gorm:"foreignKey:ProductoID"`
	Detalle  []BoletaDetalle `gorm:"foreignKey:BoletaID"`
}

func (Boleta) TableName() string { return "boletas_pesaje" }

// Fecha is the calendar day used to look up the ticket's price.
func (b Boleta) Fecha() string { return b.FechaHora.Format(FormatoFecha) }

// BoletaDetalle records the gross weight of one box of a ticket.
type BoletaDetalle struct {
	ID              uint            `gorm:"primaryKey"`
	BoletaID        uint            `gorm:"not null;index"`
	NumCaja         int             `gorm:"not null"`
	PesoBrutoCajaKg decimal.Decimal `gorm:"type:decimal(12,3);not null"`
}

func (BoletaDetalle) TableName() string { return "boleta_detalle" }
