package bascula

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeso(t *testing.T) {
	cases := []struct {
		linea string
		want  string
	}{
		{"12.345", "12.345"},
		{"  98.5 kg\r", "98.5"},
		{"ST,GS,+  12.345kg", "12.345"},
		{"12,5", "12.5"},
		{"100", "100"},
	}
	for _, tc := range cases {
		got, err := ParsePeso(tc.linea)
		require.NoError(t, err, tc.linea)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%q → %s", tc.linea, got)
	}

	for _, bad := range []string{"", "kg", "0", "-3.2", "0.000"} {
		_, err := ParsePeso(bad)
		assert.ErrorIs(t, err, ErrPesoInvalido, bad)
	}
}

// chunkReader hands out one chunk per Read and then (0, nil) forever, the
// way a serial port with a read timeout behaves.
type chunkReader struct{ chunks []string }

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		time.Sleep(time.Millisecond)
		return 0, nil
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func TestLeerLinea(t *testing.T) {
	ctx := context.Background()
	far := time.Now().Add(time.Minute)

	linea, err := leerLinea(ctx, &chunkReader{chunks: []string{"  45.", "25 kg\r", "\nbasura"}}, far)
	require.NoError(t, err)
	assert.Equal(t, "  45.25 kg", linea)

	linea, err = leerLinea(ctx, strings.NewReader("33.1"), far)
	require.NoError(t, err, "EOF cierra la linea")
	assert.Equal(t, "33.1", linea)

	_, err = leerLinea(ctx, strings.NewReader(""), far)
	assert.ErrorIs(t, err, ErrSinLectura)

	_, err = leerLinea(ctx, &chunkReader{}, time.Now().Add(20*time.Millisecond))
	assert.ErrorIs(t, err, ErrSinLectura, "vence el plazo sin datos")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = leerLinea(canceled, &chunkReader{}, far)
	assert.ErrorIs(t, err, context.Canceled)
}

type nopCloser struct{ io.Reader }

func (nopCloser) Close() error { return nil }

func TestSerialLector(t *testing.T) {
	l := NewSerialLector("/dev/ttyFAKE", 9600)
	l.open = func(puerto string, baud int, _ time.Duration) (io.ReadCloser, error) {
		assert.Equal(t, "/dev/ttyFAKE", puerto)
		assert.Equal(t, 9600, baud)
		return nopCloser{strings.NewReader("ST,GS,  61.40kg\r\n")}, nil
	}
	peso, err := l.LeerPeso(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "61.4", peso.String())

	l.open = func(string, int, time.Duration) (io.ReadCloser, error) {
		return nil, errors.New("no such file or directory")
	}
	_, err = l.LeerPeso(context.Background())
	assert.ErrorContains(t, err, "/dev/ttyFAKE")
}

func TestManualLector_ReintentaHastaNumeroValido(t *testing.T) {
	var out bytes.Buffer
	l := NewManualLector(strings.NewReader("abc\n-4\n  27,75 \n"), &out)

	peso, err := l.LeerPeso(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "27.75", peso.String())
	assert.Equal(t, 3, strings.Count(out.String(), "Peso total (kg): "))
	assert.Equal(t, 2, strings.Count(out.String(), "Valor invalido"))

	_, err = l.LeerPeso(context.Background())
	assert.ErrorIs(t, err, ErrSinLectura, "entrada agotada")
}

type lectorFijo struct {
	peso  decimal.Decimal
	err   error
	calls int
}

func (l *lectorFijo) LeerPeso(context.Context) (decimal.Decimal, error) {
	l.calls++
	return l.peso, l.err
}

func TestConRespaldo(t *testing.T) {
	ctx := context.Background()
	serial := &lectorFijo{peso: decimal.NewFromInt(50)}
	manual := &lectorFijo{peso: decimal.NewFromInt(7)}

	peso, err := ConRespaldo{Primario: serial, Respaldo: manual}.LeerPeso(ctx)
	require.NoError(t, err)
	assert.Equal(t, "50", peso.String())
	assert.Zero(t, manual.calls)

	serial.err = ErrSinLectura
	peso, err = ConRespaldo{Primario: serial, Respaldo: manual}.LeerPeso(ctx)
	require.NoError(t, err)
	assert.Equal(t, "7", peso.String())
	assert.Equal(t, 1, manual.calls)
}
