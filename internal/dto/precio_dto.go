package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PrecioItem is one price of the day's form. PrecioPorKg is a string because
// the form posts whatever the cashier typed; unparseable values are skipped.
type PrecioItem struct {
	ProductoID  uint   `json:"producto_id"`
	TipoVenta   string `json:"tipo_venta"`
	PrecioPorKg string `json:"precio_por_kg"`
}

// RegistrarPreciosRequest registers a day's prices for one customer, or the
// general "OTRO" price list when ClienteID is nil or 0.
type RegistrarPreciosRequest struct {
	Fecha     string       `json:"fecha"      validate:"required,datetime=2006-01-02"`
	ClienteID *uint        `json:"cliente_id"`
	Precios   []PrecioItem `json:"precios"    validate:"required,min=1"`
}

// PrecioFilter is bound from the query string of GET /v1/precios.
type PrecioFilter struct {
	Fecha     string `form:"fecha"`      // YYYY-MM-DD; empty = today
	ClienteID *uint  `form:"cliente_id"` // omitted = every list of the day
}

// ResolverPrecioQuery is bound from GET /v1/precios/resolver.
type ResolverPrecioQuery struct {
	ClienteID  *uint  `form:"cliente_id"`
	ProductoID uint   `form:"producto_id" validate:"required"`
	Fecha      string `form:"fecha"       validate:"omitempty,datetime=2006-01-02"`
	TipoVenta  string `form:"tipo_venta"  validate:"required,oneof=normal mayoreo menudeo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegistrarPreciosResponse struct {
	Fecha       string `json:"fecha"`
	Registrados int    `json:"registrados"`
	Omitidos    int    `json:"omitidos"`
}

type PrecioResponse struct {
	ID          uint            `json:"id"`
	ClienteID   *uint           `json:"cliente_id"`
	Cliente     string          `json:"cliente"`
	ProductoID  uint            `json:"producto_id"`
	Producto    string          `json:"producto"`
	Fecha       string          `json:"fecha"`
	TipoVenta   string          `json:"tipo_venta"`
	PrecioPorKg decimal.Decimal `json:"precio_por_kg"`
}

type PrecioResueltoResponse struct {
	ClienteID   *uint            `json:"cliente_id"`
	ProductoID  uint             `json:"producto_id"`
	Fecha       string           `json:"fecha"`
	TipoVenta   string           `json:"tipo_venta"`
	PrecioPorKg *decimal.Decimal `json:"precio_por_kg"`
}

type ProductoResponse struct {
	ID         uint     `json:"id"`
	Nombre     string   `json:"nombre"`
	Codigo     string   `json:"codigo"`
	Unidad     string   `json:"unidad"`
	TiposVenta []string `json:"tipos_venta"`
}
