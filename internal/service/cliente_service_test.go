package service

import (
	"context"
	"testing"

	"github.com/erickbalderas17/rastro-pollos/internal/apierror"
	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearCliente(t *testing.T) {
	env := newTestEnv(t)

	c, err := env.clientes.Crear(context.Background(), dto.CrearClienteRequest{Nombre: "  Don Pepe ", Referencia: "mercado"})
	require.NoError(t, err)
	assert.Equal(t, "Don Pepe", c.Nombre)
	assert.Equal(t, "mercado", c.Referencia)

	_, err = env.clientes.Crear(context.Background(), dto.CrearClienteRequest{Nombre: "   "})
	assert.ErrorIs(t, err, apierror.ErrValidation)
}

func TestListarClientes_PreciosRecientes(t *testing.T) {
	env := newTestEnv(t)
	ana := env.crearCliente(t, "Ana")
	env.crearCliente(t, "Beto")

	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "30")
	env.registrarPrecio(t, ana, idPolloEntero, env.fecha(-1), model.TipoVentaNormal, "28")
	env.registrarPrecio(t, 0, idPolloEntero, env.fecha(-2), model.TipoVentaMayoreo, "25")

	items, err := env.clientes.Listar(context.Background(), dto.ClienteFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	a := items[0]
	assert.Equal(t, "Ana", a.Nombre)
	require.NotNil(t, a.Precios.Hoy)
	assert.Equal(t, "30.00", a.Precios.Hoy.StringFixed(2))
	require.NotNil(t, a.Precios.Ayer)
	assert.Equal(t, "28.00", a.Precios.Ayer.StringFixed(2))
	assert.Nil(t, a.Precios.Antier, "solo cuenta el precio normal")

	b := items[1]
	require.NotNil(t, b.Precios.Hoy)
	assert.Nil(t, b.Precios.Ayer)
}

func TestListarClientes_Busqueda(t *testing.T) {
	env := newTestEnv(t)
	env.crearCliente(t, "Ana")
	beto := env.crearCliente(t, "Beto")

	items, err := env.clientes.Listar(context.Background(), dto.ClienteFilter{Q: "Bet"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, beto, items[0].ID)

	items, err = env.clientes.Listar(context.Background(), dto.ClienteFilter{Q: "1"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ana", items[0].Nombre)
}

func TestEliminarCliente(t *testing.T) {
	env := newTestEnv(t)
	ana := env.crearCliente(t, "Ana")
	beto := env.crearCliente(t, "Beto")
	env.registrarPrecio(t, ana, idPolloEntero, env.fecha(0), model.TipoVentaNormal, "30")
	ctx := context.Background()

	err := env.clientes.Eliminar(ctx, ana)
	assert.ErrorIs(t, err, apierror.ErrConflict)
	assert.Contains(t, err.Error(), "precios")

	require.NoError(t, env.clientes.Eliminar(ctx, beto))
	_, err = env.clientes.ObtenerPorID(ctx, beto)
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	err = env.clientes.Eliminar(ctx, beto)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
