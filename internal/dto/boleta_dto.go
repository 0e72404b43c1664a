package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearBoletaRequest records a weighing. When Cajas lists the gross weight of
// each box, PesoTotalKg and NumCajas are derived from it.
type CrearBoletaRequest struct {
	ClienteID   *uint             `json:"cliente_id"`
	ProductoID  uint              `json:"producto_id"   validate:"required"`
	TipoVenta   string            `json:"tipo_venta"    validate:"required,oneof=normal mayoreo menudeo"`
	NumPollos   int               `json:"num_pollos"    validate:"min=0"`
	NumCajas    int               `json:"num_cajas"     validate:"min=0"`
	PesoTotalKg decimal.Decimal   `json:"peso_total_kg"`
	Cajas       []decimal.Decimal `json:"cajas"`
	Comentarios string            `json:"comentarios"   validate:"max=500"`
}

// CobrarBoletaRequest settles a ticket. PesoCajaKg is the tare of one box;
// nil uses the configured default.
type CobrarBoletaRequest struct {
	PesoCajaKg *decimal.Decimal `json:"peso_caja_kg"`
	MetodoPago string           `json:"metodo_pago"  validate:"required,oneof=efectivo tarjeta credito_cliente"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BoletaDetalleResponse struct {
	NumCaja         int             `json:"num_caja"`
	PesoBrutoCajaKg decimal.Decimal `json:"peso_bruto_caja_kg"`
}

type BoletaResponse struct {
	ID          uint                    `json:"id"`
	FechaHora   string                  `json:"fecha_hora"`
	ClienteID   *uint                   `json:"cliente_id"`
	Cliente     string                  `json:"cliente"`
	ProductoID  uint                    `json:"producto_id"`
	Producto    string                  `json:"producto"`
	TipoVenta   string                  `json:"tipo_venta"`
	NumPollos   int                     `json:"num_pollos"`
	NumCajas    int                     `json:"num_cajas"`
	PesoTotalKg decimal.Decimal         `json:"peso_total_kg"`
	Comentarios string                  `json:"comentarios"`
	Estado      string                  `json:"estado"`
	Detalle     []BoletaDetalleResponse `json:"detalle,omitempty"`
}
