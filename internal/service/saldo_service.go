package service

import (
	"context"
	"fmt"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/apierror"
	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/infra"
	"github.com/erickbalderas17/rastro-pollos/internal/model"
	"github.com/erickbalderas17/rastro-pollos/internal/repository"
	"github.com/erickbalderas17/rastro-pollos/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// EmailQueue is satisfied by *worker.Dispatcher.
type EmailQueue interface {
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

type SaldoService interface {
	EstadoCuenta(ctx context.Context, clienteID uint) (*dto.EstadoCuentaResponse, error)
	Saldos(ctx context.Context) ([]dto.SaldoItem, error)
	Ajuste(ctx context.Context, clienteID uint, req dto.AjusteRequest) (*dto.MovimientoResponse, error)
	Pago(ctx context.Context, clienteID uint, req dto.PagoClienteRequest) (*dto.MovimientoResponse, error)
	ExportarXLSX(ctx context.Context, clienteID uint) ([]byte, error)
	ExportarPDF(ctx context.Context, clienteID uint) (string, error)
	EnviarPorCorreo(ctx context.Context, clienteID uint, email string) error
}

type saldoService struct {
	repo           repository.MovimientoRepository
	clienteRepo    repository.ClienteRepository
	emails         EmailQueue
	pdfStoragePath string
	now            func() time.Time
}

// NewSaldoService accepts a nil EmailQueue; statements then cannot be mailed.
func NewSaldoService(
	repo repository.MovimientoRepository,
	clienteRepo repository.ClienteRepository,
	emails EmailQueue,
	pdfStoragePath string,
) SaldoService {
	return &saldoService{
		repo:           repo,
		clienteRepo:    clienteRepo,
		emails:         emails,
		pdfStoragePath: pdfStoragePath,
		now:            time.Now,
	}
}

// ── EstadoCuenta ─────────────────────────────────────────────────────────────
// Movements come ordered by (fecha_hora, id); the running balance is their
// prefix sum and the final balance is the total.

func (s *saldoService) EstadoCuenta(ctx context.Context, clienteID uint) (*dto.EstadoCuentaResponse, error) {
	cliente, err := s.findCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	movs, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstadoCuentaResponse{
		ClienteID:   cliente.ID,
		Cliente:     cliente.Nombre,
		Movimientos: make([]dto.MovimientoResponse, len(movs)),
		Saldo:       decimal.Zero,
	}
	for i := range movs {
		resp.Saldo = resp.Saldo.Add(movs[i].Monto)
		resp.Movimientos[i] = movimientoToResponse(&movs[i], resp.Saldo)
	}
	return resp, nil
}

// Saldos lists every customer with its current balance, zero included.
func (s *saldoService) Saldos(ctx context.Context) ([]dto.SaldoItem, error) {
	clientes, err := s.clienteRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	saldos, err := s.repo.Saldos(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaldoItem, len(clientes))
	for i, c := range clientes {
		saldo, ok := saldos[c.ID]
		if !ok {
			saldo = decimal.Zero
		}
		items[i] = dto.SaldoItem{ClienteID: c.ID, Cliente: c.Nombre, Saldo: saldo}
	}
	return items, nil
}

func (s *saldoService) Ajuste(ctx context.Context, clienteID uint, req dto.AjusteRequest) (*dto.MovimientoResponse, error) {
	if req.Monto.IsZero() {
		return nil, apierror.Invalid("el monto del ajuste no puede ser 0")
	}
	return s.registrar(ctx, clienteID, model.MovimientoAjuste, req.ReferenciaID, req.Monto.Round(2))
}

// Pago records money received; it lowers the balance.
func (s *saldoService) Pago(ctx context.Context, clienteID uint, req dto.PagoClienteRequest) (*dto.MovimientoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, apierror.Invalid("el monto del pago debe ser mayor a 0")
	}
	return s.registrar(ctx, clienteID, model.MovimientoPago, req.ReferenciaID, req.Monto.Round(2).Neg())
}

func (s *saldoService) registrar(ctx context.Context, clienteID uint, tipo string, ref uint, monto decimal.Decimal) (*dto.MovimientoResponse, error) {
	if _, err := s.findCliente(ctx, clienteID); err != nil {
		return nil, err
	}
	m := &model.MovimientoCliente{
		FechaHora:    s.now(),
		ClienteID:    clienteID,
		Tipo:         tipo,
		ReferenciaID: ref,
		Monto:        monto,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	estado, err := s.EstadoCuenta(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	log.Info().
		Uint("cliente_id", clienteID).
		Str("tipo", tipo).
		Str("monto", monto.StringFixed(2)).
		Str("saldo", estado.Saldo.StringFixed(2)).
		Msg("movimiento registrado")

	resp := movimientoToResponse(m, estado.Saldo)
	return &resp, nil
}

// ── Exports ──────────────────────────────────────────────────────────────────

func (s *saldoService) ExportarXLSX(ctx context.Context, clienteID uint) ([]byte, error) {
	estado, err := s.EstadoCuenta(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return infra.EstadoCuentaXLSX(estado, s.now())
}

func (s *saldoService) ExportarPDF(ctx context.Context, clienteID uint) (string, error) {
	estado, err := s.EstadoCuenta(ctx, clienteID)
	if err != nil {
		return "", err
	}
	return infra.GenerateEstadoCuentaPDF(estado, s.now(), s.pdfStoragePath)
}

// EnviarPorCorreo renders the statement now and leaves delivery to the email
// workers, so a slow SMTP server never blocks the request.
func (s *saldoService) EnviarPorCorreo(ctx context.Context, clienteID uint, email string) error {
	if s.emails == nil {
		return apierror.Unavailable("el envio de correos no esta configurado")
	}
	estado, err := s.EstadoCuenta(ctx, clienteID)
	if err != nil {
		return err
	}
	pdfPath, err := infra.GenerateEstadoCuentaPDF(estado, s.now(), s.pdfStoragePath)
	if err != nil {
		return err
	}
	payload := worker.EmailJobPayload{
		ToEmail: email,
		Subject: fmt.Sprintf("Estado de cuenta - %s", estado.Cliente),
		Body: fmt.Sprintf("Estimado(a) %s:\n\nAdjuntamos su estado de cuenta al %s. Saldo: $%s.\n",
			estado.Cliente, s.now().Format("02/01/2006"), estado.Saldo.StringFixed(2)),
		PDFPath: pdfPath,
	}
	if err := s.emails.EnqueueEmail(ctx, payload); err != nil {
		return err
	}
	log.Info().Uint("cliente_id", clienteID).Str("to", email).Msg("estado de cuenta encolado")
	return nil
}

func (s *saldoService) findCliente(ctx context.Context, id uint) (*model.Cliente, error) {
	c, err := s.clienteRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("cliente %d no encontrado", id)
		}
		return nil, err
	}
	return c, nil
}

func movimientoToResponse(m *model.MovimientoCliente, saldo decimal.Decimal) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:           m.ID,
		FechaHora:    m.FechaHora.Format(time.RFC3339),
		Tipo:         m.Tipo,
		ReferenciaID: m.ReferenciaID,
		Monto:        m.Monto,
		Saldo:        saldo,
	}
}
