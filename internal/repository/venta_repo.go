package repository

import (
	"context"

	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uint) (*model.Venta, error)
	// ListCobradas returns the latest sales with their ticket, product and
	// customer, newest first.
	ListCobradas(ctx context.Context, limit int) ([]model.Venta, error)
	// BloquearTx locks the sale row until tx ends so returns against it run
	// one at a time. SQLite ignores the lock and serializes writers itself.
	BloquearTx(tx *gorm.DB, id uint) error
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) BloquearTx(tx *gorm.DB, id uint) error {
	var v model.Venta
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&v, id).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Boleta").
		Preload("Cliente").
		Preload("Producto").
		First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) ListCobradas(ctx context.Context, limit int) ([]model.Venta, error) {
	if limit < 1 || limit > 200 {
		limit = 200
	}
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Boleta").
		Preload("Cliente").
		Preload("Producto").
		Order("fecha_hora DESC, id DESC").
		Limit(limit).
		Find(&ventas).Error
	return ventas, err
}
