package model

import "time"

// Cliente is a customer with an optional credit account.
// A nil ClienteID elsewhere means the "OTRO / contado" walk-in customer.
type Cliente struct {
	ID         uint   `gorm:"primaryKey"`
	Nombre     string `gorm:"not null;index"`
	Referencia string
	CreatedAt  time.Time
}

func (Cliente) TableName() string { return "clientes" }
