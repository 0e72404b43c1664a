package infra

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/config"
	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func estadoDePrueba() *dto.EstadoCuentaResponse {
	return &dto.EstadoCuentaResponse{
		ClienteID: 3,
		Cliente:   "Doña Chela",
		Movimientos: []dto.MovimientoResponse{
			{ID: 1, FechaHora: "2025-03-10T10:00:00Z", Tipo: model.MovimientoVenta, ReferenciaID: 5,
				Monto: decimal.RequireFromString("1900"), Saldo: decimal.RequireFromString("1900")},
			{ID: 2, FechaHora: "2025-03-10T11:00:00Z", Tipo: model.MovimientoDevolucion, ReferenciaID: 1,
				Monto: decimal.RequireFromString("-190"), Saldo: decimal.RequireFromString("1710")},
		},
		Saldo: decimal.RequireFromString("1710"),
	}
}

func TestEstadoCuentaXLSX(t *testing.T) {
	data, err := EstadoCuentaXLSX(estadoDePrueba(), time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cliente, err := f.GetCellValue(hojaEstadoCuenta, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Doña Chela", cliente)

	tipo, _ := f.GetCellValue(hojaEstadoCuenta, "B7")
	assert.Equal(t, model.MovimientoDevolucion, tipo)

	rows, err := f.GetRows(hojaEstadoCuenta)
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.Equal(t, "Saldo", last[3])
}

func TestGenerateEstadoCuentaPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pdfs")
	path, err := GenerateEstadoCuentaPDF(estadoDePrueba(), time.Now(), dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateTicketPDF(t *testing.T) {
	cliente := uint(3)
	v := &model.Venta{
		ID: 12, FechaHora: time.Now(), BoletaID: 4, ClienteID: &cliente,
		PesoNetoKg: decimal.RequireFromString("95"), PrecioPorKg: decimal.RequireFromString("20"),
		Total: decimal.RequireFromString("1900"), MetodoPago: model.PagoCreditoCliente,
		Boleta:   &model.Boleta{ID: 4, FechaHora: time.Now(), NumCajas: 10, NumPollos: 40, PesoTotalKg: decimal.NewFromInt(100), TipoVenta: "normal"},
		Cliente:  &model.Cliente{ID: cliente, Nombre: "Doña Chela"},
		Producto: &model.Producto{Nombre: "Pollo entero"},
	}
	path, err := GenerateTicketPDF(v, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "ticket_12.pdf", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestMailer(t *testing.T) {
	err := NewMailer(&config.Config{}).Send("ana@example.com", "s", "b", "")
	assert.ErrorIs(t, err, ErrMailerNoConfigurado)

	m := NewMailer(&config.Config{SMTPHost: "localhost", SMTPPort: 1})
	err = m.Send("ana@example.com", "s", "b", filepath.Join(t.TempDir(), "no-existe.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attach PDF")
}
