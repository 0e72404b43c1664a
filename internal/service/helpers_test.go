package service

import (
	"context"
	"testing"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Product IDs as seeded by newMemStore (order of model.ProductosBase).
const (
	idPolloEntero uint = 1
	idPolloVivo   uint = 2
	idPechuga     uint = 3
)

var hoyTest = time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local)

type testEnv struct {
	store        *memStore
	clock        time.Time
	precios      *precioService
	clientes     *clienteService
	boletas      *boletaService
	ventas       *ventaService
	devoluciones *devolucionService
	saldos       *saldoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := newMemStore()
	env := &testEnv{store: s, clock: hoyTest}
	now := func() time.Time { return env.clock }

	clienteRepo := &fakeClienteRepo{s}
	productoRepo := &fakeProductoRepo{s}
	ventaRepo := &fakeVentaRepo{s}
	movRepo := &fakeMovimientoRepo{s}

	env.precios = NewPrecioService(&fakePrecioRepo{s}, productoRepo, clienteRepo, nil).(*precioService)
	env.precios.now = now
	env.clientes = NewClienteService(clienteRepo, productoRepo, env.precios).(*clienteService)
	env.clientes.now = now
	env.boletas = NewBoletaService(&fakeBoletaRepo{s}, ventaRepo, movRepo, clienteRepo, productoRepo, env.precios, decimal.Zero).(*boletaService)
	env.boletas.now = now
	env.ventas = NewVentaService(ventaRepo, t.TempDir()).(*ventaService)
	env.devoluciones = NewDevolucionService(&fakeDevolucionRepo{s}, ventaRepo, movRepo).(*devolucionService)
	env.devoluciones.now = now
	env.saldos = NewSaldoService(movRepo, clienteRepo, nil, t.TempDir()).(*saldoService)
	env.saldos.now = now
	return env
}

func (e *testEnv) advance(d time.Duration) { e.clock = e.clock.Add(d) }

func (e *testEnv) fecha(offsetDays int) string {
	return hoyTest.AddDate(0, 0, offsetDays).Format(model.FormatoFecha)
}

func (e *testEnv) crearCliente(t *testing.T, nombre string) uint {
	t.Helper()
	c, err := e.clientes.Crear(context.Background(), dto.CrearClienteRequest{Nombre: nombre})
	require.NoError(t, err)
	return c.ID
}

// registrarPrecio stores one price; clienteID 0 is the general list.
func (e *testEnv) registrarPrecio(t *testing.T, clienteID, productoID uint, fecha, tipo, precio string) {
	t.Helper()
	resp, err := e.precios.RegistrarDelDia(context.Background(), dto.RegistrarPreciosRequest{
		Fecha:     fecha,
		ClienteID: &clienteID,
		Precios:   []dto.PrecioItem{{ProductoID: productoID, TipoVenta: tipo, PrecioPorKg: precio}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Registrados)
}

func (e *testEnv) crearBoleta(t *testing.T, clienteID *uint, peso string, cajas int) uint {
	t.Helper()
	b, err := e.boletas.Crear(context.Background(), dto.CrearBoletaRequest{
		ClienteID:   clienteID,
		ProductoID:  idPolloEntero,
		TipoVenta:   model.TipoVentaNormal,
		NumPollos:   40,
		NumCajas:    cajas,
		PesoTotalKg: dec(peso),
	})
	require.NoError(t, err)
	return b.ID
}

func (e *testEnv) cobrar(t *testing.T, boletaID uint, tara, metodo string) *dto.VentaResponse {
	t.Helper()
	tr := dec(tara)
	v, err := e.boletas.Cobrar(context.Background(), boletaID, dto.CobrarBoletaRequest{PesoCajaKg: &tr, MetodoPago: metodo})
	require.NoError(t, err)
	return v
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }
