package dto

import "github.com/shopspring/decimal"

type CrearDevolucionRequest struct {
	VentaID        uint            `json:"venta_id"         validate:"required"`
	PesoDevueltoKg decimal.Decimal `json:"peso_devuelto_kg" validate:"required"`
	Motivo         string          `json:"motivo"           validate:"max=500"`
}

type DevolucionResponse struct {
	ID             uint            `json:"id"`
	FechaHora      string          `json:"fecha_hora"`
	VentaID        uint            `json:"venta_id"`
	ClienteID      *uint           `json:"cliente_id"`
	PesoDevueltoKg decimal.Decimal `json:"peso_devuelto_kg"`
	PrecioPorKg    decimal.Decimal `json:"precio_por_kg"`
	MontoDevuelto  decimal.Decimal `json:"monto_devuelto"`
	Motivo         string          `json:"motivo"`
}
