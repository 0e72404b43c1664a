package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AjusteRequest is a signed manual movement (initial balance, corrections).
type AjusteRequest struct {
	Monto        decimal.Decimal `json:"monto"         validate:"required"`
	ReferenciaID uint            `json:"referencia_id"`
}

// PagoClienteRequest records money received from the customer against the account.
type PagoClienteRequest struct {
	Monto        decimal.Decimal `json:"monto"         validate:"required,gt=0"`
	ReferenciaID uint            `json:"referencia_id"`
}

type EnviarEstadoCuentaRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID           uint            `json:"id"`
	FechaHora    string          `json:"fecha_hora"`
	Tipo         string          `json:"tipo"`
	ReferenciaID uint            `json:"referencia_id"`
	Monto        decimal.Decimal `json:"monto"`
	Saldo        decimal.Decimal `json:"saldo"` // running balance after this movement
}

type EstadoCuentaResponse struct {
	ClienteID   uint                 `json:"cliente_id"`
	Cliente     string               `json:"cliente"`
	Movimientos []MovimientoResponse `json:"movimientos"`
	Saldo       decimal.Decimal      `json:"saldo"`
}

type SaldoItem struct {
	ClienteID uint            `json:"cliente_id"`
	Cliente   string          `json:"cliente"`
	Saldo     decimal.Decimal `json:"saldo"`
}
