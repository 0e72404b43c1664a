package repository

import (
	"context"

	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"gorm.io/gorm"
)

type PrecioRepository interface {
	// CreateBatch appends the rows in a single statement.
	CreateBatch(ctx context.Context, precios []model.Precio) error
	// FindUltimo returns the highest-id row for the exact key. A nil clienteID
	// matches only general ("OTRO") rows, never customer rows.
	FindUltimo(ctx context.Context, clienteID *uint, productoID uint, fecha, tipoVenta string) (*model.Precio, error)
	// ListByFecha returns every row of a day, newest first. A non-nil
	// clienteID restricts the list to that customer's rows.
	ListByFecha(ctx context.Context, fecha string, clienteID *uint) ([]model.Precio, error)
}

type precioRepo struct{ db *gorm.DB }

func NewPrecioRepository(db *gorm.DB) PrecioRepository { return &precioRepo{db: db} }

func (r *precioRepo) CreateBatch(ctx context.Context, precios []model.Precio) error {
	if len(precios) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&precios).Error
}

func (r *precioRepo) FindUltimo(ctx context.Context, clienteID *uint, productoID uint, fecha, tipoVenta string) (*model.Precio, error) {
	q := r.db.WithContext(ctx).
		Where("producto_id = ? AND fecha = ? AND tipo_venta = ?", productoID, fecha, tipoVenta)
	if clienteID != nil {
		q = q.Where("cliente_id = ?", *clienteID)
	} else {
		q = q.Where("cliente_id IS NULL")
	}

	var p model.Precio
	err := q.Order("id DESC").Take(&p).Error
	return &p, err
}

func (r *precioRepo) ListByFecha(ctx context.Context, fecha string, clienteID *uint) ([]model.Precio, error) {
	q := r.db.WithContext(ctx).Where("fecha = ?", fecha)
	if clienteID != nil {
		q = q.Where("cliente_id = ?", *clienteID)
	}
	var precios []model.Precio
	err := q.Preload("Cliente").Preload("Producto").Order("id DESC").Find(&precios).Error
	return precios, err
}
