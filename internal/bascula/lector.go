// Package bascula reads weights from the floor scale and posts weighing
// tickets to the API. The scale sends one newline-terminated reading per
// request; when the serial link fails the operator types the weight.
package bascula

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.bug.st/serial"
)

// Lector returns one weight reading in kg.
type Lector interface {
	LeerPeso(ctx context.Context) (decimal.Decimal, error)
}

var (
	ErrSinLectura   = errors.New("bascula: sin lectura")
	ErrPesoInvalido = errors.New("bascula: peso invalido")
)

var numeroRe = regexp.MustCompile(`[-+]?\d+(?:[.,]\d+)?`)

// ParsePeso extracts the first number of a scale line such as
// "ST,GS,+  12.345kg" or "12,5". The weight must be positive.
func ParsePeso(linea string) (decimal.Decimal, error) {
	m := numeroRe.FindString(strings.TrimSpace(linea))
	if m == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrPesoInvalido, linea)
	}
	peso, err := decimal.NewFromString(strings.Replace(m, ",", ".", 1))
	if err != nil || !peso.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrPesoInvalido, linea)
	}
	return peso, nil
}

// ── Serial ───────────────────────────────────────────────────────────────────

// SerialLector reads one line from the scale's serial port.
type SerialLector struct {
	Puerto  string
	Baud    int
	Timeout time.Duration

	open func(puerto string, baud int, timeout time.Duration) (io.ReadCloser, error)
}

func NewSerialLector(puerto string, baud int) *SerialLector {
	return &SerialLector{Puerto: puerto, Baud: baud, Timeout: 2 * time.Second, open: abrirSerial}
}

func abrirSerial(puerto string, baud int, timeout time.Duration) (io.ReadCloser, error) {
	p, err := serial.Open(puerto, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	if err := p.SetReadTimeout(timeout); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (l *SerialLector) LeerPeso(ctx context.Context) (decimal.Decimal, error) {
	port, err := l.open(l.Puerto, l.Baud, l.Timeout)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bascula: abrir %s: %w", l.Puerto, err)
	}
	defer port.Close()

	linea, err := leerLinea(ctx, port, time.Now().Add(l.Timeout))
	if err != nil {
		return decimal.Zero, err
	}
	return ParsePeso(linea)
}

// leerLinea reads until '\n'. A serial read that times out returns 0 bytes
// and no error, so the deadline is checked between reads.
func leerLinea(ctx context.Context, r io.Reader, deadline time.Time) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 64)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if b == '\n' {
				return strings.TrimRight(sb.String(), "\r"), nil
			}
			sb.WriteByte(b)
		}
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return strings.TrimRight(sb.String(), "\r"), nil
			}
			if errors.Is(err, io.EOF) {
				return "", ErrSinLectura
			}
			return "", err
		}
		if n == 0 && time.Now().After(deadline) {
			return "", ErrSinLectura
		}
	}
}

// ── Manual ───────────────────────────────────────────────────────────────────

// ManualLector prompts on Out and reads from In until a valid weight is typed.
type ManualLector struct {
	In  io.Reader
	Out io.Writer

	sc *bufio.Scanner
}

func NewManualLector(in io.Reader, out io.Writer) *ManualLector {
	return &ManualLector{In: in, Out: out, sc: bufio.NewScanner(in)}
}

func (l *ManualLector) LeerPeso(ctx context.Context) (decimal.Decimal, error) {
	if l.sc == nil {
		l.sc = bufio.NewScanner(l.In)
	}
	for {
		if err := ctx.Err(); err != nil {
			return decimal.Zero, err
		}
		fmt.Fprint(l.Out, "Peso total (kg): ")
		if !l.sc.Scan() {
			if err := l.sc.Err(); err != nil {
				return decimal.Zero, err
			}
			return decimal.Zero, ErrSinLectura
		}
		peso, err := ParsePeso(l.sc.Text())
		if err == nil {
			return peso, nil
		}
		fmt.Fprintln(l.Out, "Valor invalido, capture un numero mayor a 0.")
	}
}

// ── Fallback ─────────────────────────────────────────────────────────────────

// ConRespaldo uses Respaldo whenever Primario fails.
type ConRespaldo struct {
	Primario Lector
	Respaldo Lector
}

func (l ConRespaldo) LeerPeso(ctx context.Context) (decimal.Decimal, error) {
	peso, err := l.Primario.LeerPeso(ctx)
	if err == nil {
		return peso, nil
	}
	if ctx.Err() != nil {
		return decimal.Zero, ctx.Err()
	}
	log.Warn().Err(err).Msg("lectura de bascula fallida, captura manual")
	return l.Respaldo.LeerPeso(ctx)
}
