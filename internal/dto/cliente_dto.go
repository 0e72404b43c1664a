package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre     string `json:"nombre"     validate:"required,min=1,max=120"`
	Referencia string `json:"referencia" validate:"max=255"`
}

// ClienteFilter is bound from the query string of GET /v1/clientes.
type ClienteFilter struct {
	Q string `form:"q"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID         uint   `json:"id"`
	Nombre     string `json:"nombre"`
	Referencia string `json:"referencia"`
}

// PreciosRecientes shows the whole-chicken normal price of the last three
// days, as the cashier sees it when quoting a customer. nil = no price.
type PreciosRecientes struct {
	Antier *decimal.Decimal `json:"antier"`
	Ayer   *decimal.Decimal `json:"ayer"`
	Hoy    *decimal.Decimal `json:"hoy"`
}

type ClienteListItem struct {
	ClienteResponse
	Precios PreciosRecientes `json:"precios_pollo_entero"`
}
