// Package repository holds the gorm data access layer. Every repository is an
// interface so services can be unit tested against in-memory fakes.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether err means "no such row".
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
