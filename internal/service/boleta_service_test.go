package service

import (
	"context"
	"testing"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/apierror"
	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCobrar_CalculaNetoYTotal(t *testing.T) {
	env := newTestEnv(t)
	ana := env.crearCliente(t, "Ana")
	env.registrarPrecio(t, ana, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "20")
	boletaID := env.crearBoleta(t, &ana, "100", 10)

	v := env.cobrar(t, boletaID, "0.5", model.PagoCreditoCliente)

	assert.Equal(t, "95.000", v.PesoNetoKg.StringFixed(3))
	assert.Equal(t, "20.00", v.PrecioPorKg.StringFixed(2))
	assert.Equal(t, "1900.00", v.Total.StringFixed(2))
	assert.Equal(t, boletaID, v.BoletaID)
	assert.Equal(t, "Ana", v.Cliente)

	assert.Equal(t, model.BoletaCerrada, env.store.boletas[boletaID].Estado)
	require.Len(t, env.store.movimientos, 1)
	m := env.store.movimientos[0]
	assert.Equal(t, model.MovimientoVenta, m.Tipo)
	assert.Equal(t, ana, m.ClienteID)
	assert.Equal(t, v.ID, m.ReferenciaID)
	assert.Equal(t, "1900.00", m.Monto.StringFixed(2))
}

func TestCobrar_DosVecesEsConflicto(t *testing.T) {
	env := newTestEnv(t)
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "20")
	boletaID := env.crearBoleta(t, nil, "50", 2)
	env.cobrar(t, boletaID, "1", model.PagoEfectivo)

	tara := dec("1")
	_, err := env.boletas.Cobrar(context.Background(), boletaID, dto.CobrarBoletaRequest{PesoCajaKg: &tara, MetodoPago: model.PagoEfectivo})
	assert.ErrorIs(t, err, apierror.ErrConflict)
	assert.Len(t, env.store.ventas, 1)
}

func TestCobrar_CierreConcurrenteEsConflicto(t *testing.T) {
	env := newTestEnv(t)
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "20")
	boletaID := env.crearBoleta(t, nil, "50", 2)
	env.boletas.repo = &closingBoletaRepo{fakeBoletaRepo{env.store}}

	tara := dec("1")
	_, err := env.boletas.Cobrar(context.Background(), boletaID, dto.CobrarBoletaRequest{PesoCajaKg: &tara, MetodoPago: model.PagoCreditoCliente})
	assert.ErrorIs(t, err, apierror.ErrConflict)
	assert.Empty(t, env.store.ventas)
	assert.Empty(t, env.store.movimientos)
}

// closingBoletaRepo loses the race: another settlement closed the ticket
// between the read and the guarded update.
type closingBoletaRepo struct{ fakeBoletaRepo }

func (r *closingBoletaRepo) CerrarTx(_ *gorm.DB, _ uint) (bool, error) {
	return false, nil
}

func TestCobrar_SinPrecioEsInvalido(t *testing.T) {
	env := newTestEnv(t)
	boletaID := env.crearBoleta(t, nil, "50", 2)

	_, err := env.boletas.Cobrar(context.Background(), boletaID, dto.CobrarBoletaRequest{MetodoPago: model.PagoEfectivo})
	assert.ErrorIs(t, err, apierror.ErrValidation)
	assert.Equal(t, model.BoletaAbierta, env.store.boletas[boletaID].Estado)
	assert.Empty(t, env.store.ventas)
}

func TestCobrar_PesoNetoNoPositivo(t *testing.T) {
	env := newTestEnv(t)
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "20")
	boletaID := env.crearBoleta(t, nil, "5", 10)

	tara := dec("0.5")
	_, err := env.boletas.Cobrar(context.Background(), boletaID, dto.CobrarBoletaRequest{PesoCajaKg: &tara, MetodoPago: model.PagoEfectivo})
	assert.ErrorIs(t, err, apierror.ErrValidation)
	assert.Equal(t, model.BoletaAbierta, env.store.boletas[boletaID].Estado)
}

func TestCobrar_BoletaInexistente(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.boletas.Cobrar(context.Background(), 404, dto.CobrarBoletaRequest{MetodoPago: model.PagoEfectivo})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestCobrar_SoloCreditoConClienteGeneraMovimiento(t *testing.T) {
	env := newTestEnv(t)
	ana := env.crearCliente(t, "Ana")
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "20")

	env.cobrar(t, env.crearBoleta(t, &ana, "10", 0), "0", model.PagoEfectivo)
	env.cobrar(t, env.crearBoleta(t, &ana, "10", 0), "0", model.PagoTarjeta)
	env.cobrar(t, env.crearBoleta(t, nil, "10", 0), "0", model.PagoCreditoCliente)
	assert.Empty(t, env.store.movimientos)

	env.cobrar(t, env.crearBoleta(t, &ana, "10", 0), "0", model.PagoCreditoCliente)
	assert.Len(t, env.store.movimientos, 1)
}

func TestCobrar_UsaLaFechaDeLaBoleta(t *testing.T) {
	env := newTestEnv(t)
	env.clock = hoyTest.AddDate(0, 0, -1)
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(-1), model.TipoVentaNormal, "18")
	boletaID := env.crearBoleta(t, nil, "10", 0)

	env.clock = hoyTest
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "25")

	v := env.cobrar(t, boletaID, "0", model.PagoEfectivo)
	assert.Equal(t, "18.00", v.PrecioPorKg.StringFixed(2))
	assert.Equal(t, "180.00", v.Total.StringFixed(2))
}

func TestCobrar_TaraPorDefecto(t *testing.T) {
	env := newTestEnv(t)
	env.boletas.taraDefault = dec("2")
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "10")
	boletaID := env.crearBoleta(t, nil, "50", 5)

	v, err := env.boletas.Cobrar(context.Background(), boletaID, dto.CobrarBoletaRequest{MetodoPago: model.PagoEfectivo})
	require.NoError(t, err)
	assert.Equal(t, "40.000", v.PesoNetoKg.StringFixed(3))
	assert.Equal(t, "400.00", v.Total.StringFixed(2))
}

func TestImporte_RedondeaAlCentavo(t *testing.T) {
	cases := []struct{ peso, precio, want string }{
		{"1.333", "10.05", "13.40"}, // 13.39665
		{"2.5", "0.01", "0.03"},     // 0.025 half away from zero
		{"95", "20", "1900.00"},
		{"0.001", "1", "0.00"},
	}
	for _, tc := range cases {
		got := Importe(dec(tc.peso), dec(tc.precio))
		assert.Equal(t, tc.want, got.StringFixed(2), "%s × %s", tc.peso, tc.precio)
	}
}

func TestPesoNeto(t *testing.T) {
	assert.True(t, PesoNeto(dec("100"), 10, dec("0.5")).Equal(dec("95")))
	assert.True(t, PesoNeto(dec("100"), 0, dec("3")).Equal(dec("100")))
	assert.True(t, PesoNeto(dec("4"), 10, dec("0.5")).IsNegative())
}

func TestCrearBoleta_ConDetalleDeCajas(t *testing.T) {
	env := newTestEnv(t)
	b, err := env.boletas.Crear(context.Background(), dto.CrearBoletaRequest{
		ProductoID:  idPolloEntero,
		TipoVenta:   model.TipoVentaMayoreo,
		NumCajas:    99,
		PesoTotalKg: dec("1"),
		Cajas:       []decimal.Decimal{dec("10.5"), dec("11.25"), dec("9.75")},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, b.NumCajas)
	assert.Equal(t, "31.500", b.PesoTotalKg.StringFixed(3))
	assert.Equal(t, model.BoletaAbierta, b.Estado)
	assert.Equal(t, "OTRO", b.Cliente)
	require.Len(t, b.Detalle, 3)
	assert.Equal(t, 2, b.Detalle[1].NumCaja)
}

func TestCrearBoleta_Validaciones(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.boletas.Crear(ctx, dto.CrearBoletaRequest{ProductoID: idPolloEntero, TipoVenta: "normal", PesoTotalKg: dec("0")})
	assert.ErrorIs(t, err, apierror.ErrValidation, "peso cero")

	_, err = env.boletas.Crear(ctx, dto.CrearBoletaRequest{ProductoID: idPechuga, TipoVenta: "mayoreo", PesoTotalKg: dec("5")})
	assert.ErrorIs(t, err, apierror.ErrValidation, "pechuga no se vende por mayoreo")

	_, err = env.boletas.Crear(ctx, dto.CrearBoletaRequest{ProductoID: 99, TipoVenta: "normal", PesoTotalKg: dec("5")})
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	_, err = env.boletas.Crear(ctx, dto.CrearBoletaRequest{ClienteID: ptr(uint(55)), ProductoID: idPolloEntero, TipoVenta: "normal", PesoTotalKg: dec("5")})
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	_, err = env.boletas.Crear(ctx, dto.CrearBoletaRequest{ProductoID: idPolloEntero, TipoVenta: "normal", Cajas: []decimal.Decimal{dec("3"), dec("0")}})
	assert.ErrorIs(t, err, apierror.ErrValidation)
}

func TestListarAbiertas_ExcluyeCobradas(t *testing.T) {
	env := newTestEnv(t)
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "20")
	b1 := env.crearBoleta(t, nil, "10", 0)
	env.advance(time.Minute)
	b2 := env.crearBoleta(t, nil, "12", 0)
	env.cobrar(t, b1, "0", model.PagoEfectivo)

	abiertas, err := env.boletas.ListarAbiertas(context.Background())
	require.NoError(t, err)
	require.Len(t, abiertas, 1)
	assert.Equal(t, b2, abiertas[0].ID)

	cobradas, err := env.ventas.ListarCobradas(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, cobradas, 1)
	assert.Equal(t, b1, cobradas[0].BoletaID)
	assert.Equal(t, 0, cobradas[0].NumCajas)
}
