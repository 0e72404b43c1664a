package dto

import "github.com/shopspring/decimal"

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID          uint            `json:"id"`
	FechaHora   string          `json:"fecha_hora"`
	BoletaID    uint            `json:"boleta_id"`
	ClienteID   *uint           `json:"cliente_id"`
	Cliente     string          `json:"cliente"`
	ProductoID  uint            `json:"producto_id"`
	Producto    string          `json:"producto"`
	PesoNetoKg  decimal.Decimal `json:"peso_neto_kg"`
	PrecioPorKg decimal.Decimal `json:"precio_por_kg"`
	Total       decimal.Decimal `json:"total"`
	MetodoPago  string          `json:"metodo_pago"`
}

// BoletaCobradaItem is one row of GET /v1/boletas/cobradas.
type BoletaCobradaItem struct {
	VentaResponse
	FechaBoleta string `json:"fecha_boleta"`
	NumPollos   int    `json:"num_pollos"`
	NumCajas    int    `json:"num_cajas"`
	TipoVenta   string `json:"tipo_venta"`
}
