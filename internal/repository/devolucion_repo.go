package repository

import (
	"context"

	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DevolucionRepository interface {
	CreateTx(tx *gorm.DB, d *model.Devolucion) error
	ListByVenta(ctx context.Context, ventaID uint) ([]model.Devolucion, error)
	// PesoDevueltoTx sums the weight already returned against a sale.
	PesoDevueltoTx(tx *gorm.DB, ventaID uint) (decimal.Decimal, error)
}

type devolucionRepo struct{ db *gorm.DB }

func NewDevolucionRepository(db *gorm.DB) DevolucionRepository { return &devolucionRepo{db: db} }

func (r *devolucionRepo) CreateTx(tx *gorm.DB, d *model.Devolucion) error {
	return tx.Create(d).Error
}

func (r *devolucionRepo) ListByVenta(ctx context.Context, ventaID uint) ([]model.Devolucion, error) {
	var devs []model.Devolucion
	err := r.db.WithContext(ctx).Where("venta_id = ?", ventaID).Order("id").Find(&devs).Error
	return devs, err
}

// PesoDevueltoTx adds the weights in Go: SQLite would sum the decimal column
// as a float and lose exactness.
func (r *devolucionRepo) PesoDevueltoTx(tx *gorm.DB, ventaID uint) (decimal.Decimal, error) {
	var devs []model.Devolucion
	if err := tx.Where("venta_id = ?", ventaID).Find(&devs).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, d := range devs {
		total = total.Add(d.PesoDevueltoKg)
	}
	return total, nil
}
