package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	TipoVentaNormal  = "normal"
	TipoVentaMayoreo = "mayoreo"
	TipoVentaMenudeo = "menudeo"
)

// Precio is one price-per-kg entry for a day.
// Rows are append-only: several rows may share (cliente, producto, fecha, tipo)
// and the one with the highest ID is in force. ClienteID nil = general "OTRO" price.
type Precio struct {
	ID          uint            `gorm:"primaryKey"`
	ClienteID   *uint           `gorm:"index:idx_precios_lookup,priority:1"`
	ProductoID  uint            `gorm:"not null;index:idx_precios_lookup,priority:2"`
	Fecha       string          `gorm:"type:varchar(10);not null;index:idx_precios_lookup,priority:3"` // YYYY-MM-DD
	TipoVenta   string          `gorm:"type:varchar(10);not null;index:idx_precios_lookup,priority:4"`
	PrecioPorKg decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time

	Cliente  *Cliente  `gorm:"foreignKey:ClienteID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Precio) TableName() string { return "precios" }

// FormatoFecha is the layout of Precio.Fecha and of every date in the API.
const FormatoFecha = "2006-01-02"
