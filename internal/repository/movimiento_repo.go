package repository

import (
	"context"

	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimientoRepository is append-only: movements are never updated or deleted.
type MovimientoRepository interface {
	Create(ctx context.Context, m *model.MovimientoCliente) error
	CreateTx(tx *gorm.DB, m *model.MovimientoCliente) error
	// ListByCliente returns the movements in replay order (fecha_hora, id).
	ListByCliente(ctx context.Context, clienteID uint) ([]model.MovimientoCliente, error)
	// Saldos folds every movement into a balance per customer.
	Saldos(ctx context.Context) (map[uint]decimal.Decimal, error)
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository { return &movimientoRepo{db: db} }

func (r *movimientoRepo) Create(ctx context.Context, m *model.MovimientoCliente) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.MovimientoCliente) error {
	return tx.Create(m).Error
}

func (r *movimientoRepo) ListByCliente(ctx context.Context, clienteID uint) ([]model.MovimientoCliente, error) {
	var movs []model.MovimientoCliente
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("fecha_hora ASC, id ASC").
		Find(&movs).Error
	return movs, err
}

func (r *movimientoRepo) Saldos(ctx context.Context) (map[uint]decimal.Decimal, error) {
	saldos := make(map[uint]decimal.Decimal)
	var batch []model.MovimientoCliente
	err := r.db.WithContext(ctx).
		Select("id", "cliente_id", "monto").
		FindInBatches(&batch, 500, func(_ *gorm.DB, _ int) error {
			for _, m := range batch {
				saldos[m.ClienteID] = saldos[m.ClienteID].Add(m.Monto)
			}
			return nil
		}).Error
	return saldos, err
}
