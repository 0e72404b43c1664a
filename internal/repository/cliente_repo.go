package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"gorm.io/gorm"
)

// Dependencia counts the rows of one table that reference a customer.
type Dependencia struct {
	Tabla    string
	Cantidad int64
}

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	// List filters by exact id when q is all digits, otherwise by a
	// substring of nombre or referencia. Empty q lists everyone.
	List(ctx context.Context, q string) ([]model.Cliente, error)
	ContarDependencias(ctx context.Context, id uint) ([]Dependencia, error)
	Delete(ctx context.Context, id uint) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context, q string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	query := r.db.WithContext(ctx).Model(&model.Cliente{})

	q = strings.TrimSpace(q)
	if q != "" {
		if id, err := strconv.ParseUint(q, 10, 64); err == nil {
			query = query.Where("id = ?", id)
		} else {
			like := "%" + q + "%"
			query = query.Where("nombre LIKE ? OR referencia LIKE ?", like, like)
		}
	}

	err := query.Order("id").Find(&clientes).Error
	return clientes, err
}

// ContarDependencias checks, in a fixed order, every table that may point
// at the customer. Only tables with at least one row are returned.
func (r *clienteRepo) ContarDependencias(ctx context.Context, id uint) ([]Dependencia, error) {
	checks := []struct {
		tabla string
		model any
	}{
		{"precios", &model.Precio{}},
		{"boletas_pesaje", &model.Boleta{}},
		{"ventas", &model.Venta{}},
		{"movimientos_cliente", &model.MovimientoCliente{}},
		{"devoluciones", &model.Devolucion{}},
	}

	var deps []Dependencia
	for _, chk := range checks {
		var n int64
		if err := r.db.WithContext(ctx).Model(chk.model).Where("cliente_id = ?", id).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			deps = append(deps, Dependencia{Tabla: chk.tabla, Cantidad: n})
		}
	}
	return deps, nil
}

func (r *clienteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}
