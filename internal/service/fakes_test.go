package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/erickbalderas17/rastro-pollos/internal/model"
	"github.com/erickbalderas17/rastro-pollos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory store ──────────────────────────────────────────────────────────
// One store backs every fake repository so services see each other's writes,
// the way they would through a single database. tx is always nil in unit tests.

type memStore struct {
	seq          uint
	clientes     map[uint]*model.Cliente
	productos    []model.Producto
	precios      []model.Precio
	boletas      map[uint]*model.Boleta
	ventas       map[uint]*model.Venta
	devoluciones []model.Devolucion
	movimientos  []model.MovimientoCliente
	usuarios     map[string]*model.Usuario
}

func newMemStore() *memStore {
	s := &memStore{
		clientes: make(map[uint]*model.Cliente),
		boletas:  make(map[uint]*model.Boleta),
		ventas:   make(map[uint]*model.Venta),
		usuarios: make(map[string]*model.Usuario),
	}
	for i, p := range model.ProductosBase {
		p.ID = uint(i + 1)
		s.productos = append(s.productos, p)
	}
	return s
}

func (s *memStore) nextID() uint {
	s.seq++
	return s.seq
}

func (s *memStore) producto(id uint) *model.Producto {
	for i := range s.productos {
		if s.productos[i].ID == id {
			return &s.productos[i]
		}
	}
	return nil
}

// ── Clientes ─────────────────────────────────────────────────────────────────

type fakeClienteRepo struct{ s *memStore }

var _ repository.ClienteRepository = (*fakeClienteRepo)(nil)

func (r *fakeClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	c.ID = r.s.nextID()
	cp := *c
	r.s.clientes[c.ID] = &cp
	return nil
}

func (r *fakeClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClienteRepo) List(_ context.Context, q string) ([]model.Cliente, error) {
	var out []model.Cliente
	q = strings.TrimSpace(q)
	id, numErr := strconv.ParseUint(q, 10, 64)
	for _, c := range r.s.clientes {
		switch {
		case q == "":
		case numErr == nil:
			if c.ID != uint(id) {
				continue
			}
		default:
			if !strings.Contains(c.Nombre, q) && !strings.Contains(c.Referencia, q) {
				continue
			}
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeClienteRepo) ContarDependencias(_ context.Context, id uint) ([]repository.Dependencia, error) {
	var deps []repository.Dependencia
	count := func(tabla string, n int64) {
		if n > 0 {
			deps = append(deps, repository.Dependencia{Tabla: tabla, Cantidad: n})
		}
	}
	var n int64
	for _, p := range r.s.precios {
		if p.ClienteID != nil && *p.ClienteID == id {
			n++
		}
	}
	count("precios", n)
	n = 0
	for _, b := range r.s.boletas {
		if b.ClienteID != nil && *b.ClienteID == id {
			n++
		}
	}
	count("boletas_pesaje", n)
	n = 0
	for _, v := range r.s.ventas {
		if v.ClienteID != nil && *v.ClienteID == id {
			n++
		}
	}
	count("ventas", n)
	n = 0
	for _, m := range r.s.movimientos {
		if m.ClienteID == id {
			n++
		}
	}
	count("movimientos_cliente", n)
	return deps, nil
}

func (r *fakeClienteRepo) Delete(_ context.Context, id uint) error {
	delete(r.s.clientes, id)
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

type fakeProductoRepo struct{ s *memStore }

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

func (r *fakeProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	return append([]model.Producto(nil), r.s.productos...), nil
}

func (r *fakeProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	if p := r.s.producto(id); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	for _, p := range r.s.productos {
		if p.Codigo == codigo {
			cp := p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Precios ──────────────────────────────────────────────────────────────────

type fakePrecioRepo struct{ s *memStore }

var _ repository.PrecioRepository = (*fakePrecioRepo)(nil)

func (r *fakePrecioRepo) CreateBatch(_ context.Context, precios []model.Precio) error {
	for i := range precios {
		precios[i].ID = r.s.nextID()
		r.s.precios = append(r.s.precios, precios[i])
	}
	return nil
}

func (r *fakePrecioRepo) FindUltimo(_ context.Context, clienteID *uint, productoID uint, fecha, tipo string) (*model.Precio, error) {
	var best *model.Precio
	for i := range r.s.precios {
		p := &r.s.precios[i]
		if p.ProductoID != productoID || p.Fecha != fecha || p.TipoVenta != tipo {
			continue
		}
		if (clienteID == nil) != (p.ClienteID == nil) {
			continue
		}
		if clienteID != nil && *clienteID != *p.ClienteID {
			continue
		}
		if best == nil || p.ID > best.ID {
			best = p
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *best
	return &cp, nil
}

func (r *fakePrecioRepo) ListByFecha(_ context.Context, fecha string, clienteID *uint) ([]model.Precio, error) {
	var out []model.Precio
	for i := len(r.s.precios) - 1; i >= 0; i-- {
		p := r.s.precios[i]
		if p.Fecha != fecha {
			continue
		}
		if clienteID != nil && (p.ClienteID == nil || *p.ClienteID != *clienteID) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ── Boletas ──────────────────────────────────────────────────────────────────

type fakeBoletaRepo struct{ s *memStore }

var _ repository.BoletaRepository = (*fakeBoletaRepo)(nil)

func (r *fakeBoletaRepo) Create(_ context.Context, b *model.Boleta) error {
	b.ID = r.s.nextID()
	for i := range b.Detalle {
		b.Detalle[i].ID = r.s.nextID()
		b.Detalle[i].BoletaID = b.ID
	}
	cp := *b
	r.s.boletas[b.ID] = &cp
	return nil
}

func (r *fakeBoletaRepo) FindByID(_ context.Context, id uint) (*model.Boleta, error) {
	b, ok := r.s.boletas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	cp.Producto = r.s.producto(b.ProductoID)
	if b.ClienteID != nil {
		cp.Cliente = r.s.clientes[*b.ClienteID]
	}
	return &cp, nil
}

func (r *fakeBoletaRepo) ListAbiertas(_ context.Context) ([]model.Boleta, error) {
	var out []model.Boleta
	for _, b := range r.s.boletas {
		if b.Estado == model.BoletaAbierta {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBoletaRepo) CerrarTx(_ *gorm.DB, id uint) (bool, error) {
	b, ok := r.s.boletas[id]
	if !ok || b.Estado != model.BoletaAbierta {
		return false, nil
	}
	b.Estado = model.BoletaCerrada
	return true, nil
}

func (r *fakeBoletaRepo) DB() *gorm.DB { return nil }

// ── Ventas ───────────────────────────────────────────────────────────────────

type fakeVentaRepo struct{ s *memStore }

var _ repository.VentaRepository = (*fakeVentaRepo)(nil)

func (r *fakeVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	v.ID = r.s.nextID()
	cp := *v
	r.s.ventas[v.ID] = &cp
	return nil
}

func (r *fakeVentaRepo) FindByID(_ context.Context, id uint) (*model.Venta, error) {
	v, ok := r.s.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	cp.Boleta = r.s.boletas[v.BoletaID]
	cp.Producto = r.s.producto(v.ProductoID)
	if v.ClienteID != nil {
		cp.Cliente = r.s.clientes[*v.ClienteID]
	}
	return &cp, nil
}

func (r *fakeVentaRepo) ListCobradas(ctx context.Context, limit int) ([]model.Venta, error) {
	var out []model.Venta
	for id := range r.s.ventas {
		v, _ := r.FindByID(ctx, id)
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeVentaRepo) BloquearTx(_ *gorm.DB, id uint) error {
	if _, ok := r.s.ventas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fakeVentaRepo) DB() *gorm.DB { return nil }

// ── Devoluciones ─────────────────────────────────────────────────────────────

type fakeDevolucionRepo struct{ s *memStore }

var _ repository.DevolucionRepository = (*fakeDevolucionRepo)(nil)

func (r *fakeDevolucionRepo) CreateTx(_ *gorm.DB, d *model.Devolucion) error {
	d.ID = r.s.nextID()
	r.s.devoluciones = append(r.s.devoluciones, *d)
	return nil
}

func (r *fakeDevolucionRepo) ListByVenta(_ context.Context, ventaID uint) ([]model.Devolucion, error) {
	var out []model.Devolucion
	for _, d := range r.s.devoluciones {
		if d.VentaID == ventaID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDevolucionRepo) PesoDevueltoTx(_ *gorm.DB, ventaID uint) (decimal.Decimal, error) {
	devs, _ := r.ListByVenta(context.Background(), ventaID)
	total := decimal.Zero
	for _, d := range devs {
		total = total.Add(d.PesoDevueltoKg)
	}
	return total, nil
}

// ── Movimientos ──────────────────────────────────────────────────────────────

type fakeMovimientoRepo struct{ s *memStore }

var _ repository.MovimientoRepository = (*fakeMovimientoRepo)(nil)

func (r *fakeMovimientoRepo) Create(_ context.Context, m *model.MovimientoCliente) error {
	return r.CreateTx(nil, m)
}

func (r *fakeMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoCliente) error {
	m.ID = r.s.nextID()
	r.s.movimientos = append(r.s.movimientos, *m)
	return nil
}

func (r *fakeMovimientoRepo) ListByCliente(_ context.Context, clienteID uint) ([]model.MovimientoCliente, error) {
	var out []model.MovimientoCliente
	for _, m := range r.s.movimientos {
		if m.ClienteID == clienteID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].FechaHora.Equal(out[j].FechaHora) {
			return out[i].FechaHora.Before(out[j].FechaHora)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeMovimientoRepo) Saldos(_ context.Context) (map[uint]decimal.Decimal, error) {
	out := make(map[uint]decimal.Decimal)
	for _, m := range r.s.movimientos {
		out[m.ClienteID] = out[m.ClienteID].Add(m.Monto)
	}
	return out, nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct{ s *memStore }

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

func (r *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.s.usuarios[username]
	if !ok || !u.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	for _, u := range r.s.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
