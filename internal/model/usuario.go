package model

import "time"

// Roles.
const (
	RolCaja    = "caja"
	RolBascula = "bascula"
)

// Kinds of session token. Only access tokens open the API; a refresh token is
// good for POST /v1/auth/refresh and nothing else.
const (
	TokenAcceso  = "acceso"
	TokenRefresh = "refresh"
)

// Usuario stores system users with role-based access.
// Rol: "caja" (cashier, full access) | "bascula" (scale operator)
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Nombre       string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
