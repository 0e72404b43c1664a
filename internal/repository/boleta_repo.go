package repository

import (
	"context"

	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"gorm.io/gorm"
)

type BoletaRepository interface {
	// Create inserts the ticket together with its per-box detail rows.
	Create(ctx context.Context, b *model.Boleta) error
	FindByID(ctx context.Context, id uint) (*model.Boleta, error)
	ListAbiertas(ctx context.Context) ([]model.Boleta, error)
	// CerrarTx moves an open ticket to "cerrada". It returns false when the
	// ticket was not open anymore, so two settlements can never both win.
	CerrarTx(tx *gorm.DB, id uint) (bool, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type boletaRepo struct{ db *gorm.DB }

func NewBoletaRepository(db *gorm.DB) BoletaRepository { return &boletaRepo{db: db} }

func (r *boletaRepo) DB() *gorm.DB { return r.db }

func (r *boletaRepo) Create(ctx context.Context, b *model.Boleta) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *boletaRepo) FindByID(ctx context.Context, id uint) (*model.Boleta, error) {
	var b model.Boleta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Producto").
		Preload("Detalle", func(db *gorm.DB) *gorm.DB { return db.Order("num_caja") }).
		First(&b, id).Error
	return &b, err
}

func (r *boletaRepo) ListAbiertas(ctx context.Context) ([]model.Boleta, error) {
	var boletas []model.Boleta
	err := r.db.WithContext(ctx).
		Where("estado = ?", model.BoletaAbierta).
		Preload("Cliente").
		Preload("Producto").
		Order("fecha_hora, id").
		Find(&boletas).Error
	return boletas, err
}

func (r *boletaRepo) CerrarTx(tx *gorm.DB, id uint) (bool, error) {
	res := tx.Model(&model.Boleta{}).
		Where("id = ? AND estado = ?", id, model.BoletaAbierta).
		Update("estado", model.BoletaCerrada)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
