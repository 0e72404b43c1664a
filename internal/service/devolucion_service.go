package service

import (
	"context"
	"strings"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/apierror"
	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/model"
	"github.com/erickbalderas17/rastro-pollos/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type DevolucionService interface {
	Registrar(ctx context.Context, req dto.CrearDevolucionRequest) (*dto.DevolucionResponse, error)
	ListarPorVenta(ctx context.Context, ventaID uint) ([]dto.DevolucionResponse, error)
}

type devolucionService struct {
	repo           repository.DevolucionRepository
	ventaRepo      repository.VentaRepository
	movimientoRepo repository.MovimientoRepository
	now            func() time.Time
}

func NewDevolucionService(
	repo repository.DevolucionRepository,
	ventaRepo repository.VentaRepository,
	movimientoRepo repository.MovimientoRepository,
) DevolucionService {
	return &devolucionService{repo: repo, ventaRepo: ventaRepo, movimientoRepo: movimientoRepo, now: time.Now}
}

// Registrar values the returned weight at the sale's frozen price. The credit
// is posted to the customer's account whatever the sale's payment method was.
func (s *devolucionService) Registrar(ctx context.Context, req dto.CrearDevolucionRequest) (*dto.DevolucionResponse, error) {
	if !req.PesoDevueltoKg.IsPositive() {
		return nil, apierror.Invalid("el peso devuelto debe ser mayor a 0")
	}
	venta, err := s.ventaRepo.FindByID(ctx, req.VentaID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("venta %d no encontrada", req.VentaID)
		}
		return nil, err
	}

	monto := Importe(req.PesoDevueltoKg, venta.PrecioPorKg)
	dev := model.Devolucion{
		FechaHora:      s.now(),
		VentaID:        venta.ID,
		ClienteID:      venta.ClienteID,
		PesoDevueltoKg: req.PesoDevueltoKg,
		MontoDevuelto:  monto,
		Motivo:         strings.TrimSpace(req.Motivo),
	}

	txErr := runTx(ctx, s.ventaRepo.DB(), func(tx *gorm.DB) error {
		if err := s.ventaRepo.BloquearTx(tx, venta.ID); err != nil {
			return err
		}
		yaDevuelto, err := s.repo.PesoDevueltoTx(tx, venta.ID)
		if err != nil {
			return err
		}
		if yaDevuelto.Add(req.PesoDevueltoKg).GreaterThan(venta.PesoNetoKg) {
			return apierror.Invalid("el peso devuelto excede lo vendido: %s kg vendidos, %s kg ya devueltos",
				venta.PesoNetoKg.String(), yaDevuelto.String())
		}
		if err := s.repo.CreateTx(tx, &dev); err != nil {
			return err
		}
		if venta.ClienteID == nil {
			return nil
		}
		return s.movimientoRepo.CreateTx(tx, &model.MovimientoCliente{
			FechaHora:    dev.FechaHora,
			ClienteID:    *venta.ClienteID,
			Tipo:         model.MovimientoDevolucion,
			ReferenciaID: dev.ID,
			Monto:        monto.Neg(),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().
		Uint("devolucion_id", dev.ID).
		Uint("venta_id", venta.ID).
		Str("peso_devuelto_kg", dev.PesoDevueltoKg.String()).
		Str("monto", monto.StringFixed(2)).
		Msg("devolucion registrada")

	return devolucionToResponse(&dev, venta), nil
}

func (s *devolucionService) ListarPorVenta(ctx context.Context, ventaID uint) ([]dto.DevolucionResponse, error) {
	venta, err := s.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("venta %d no encontrada", ventaID)
		}
		return nil, err
	}
	devs, err := s.repo.ListByVenta(ctx, ventaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DevolucionResponse, len(devs))
	for i := range devs {
		resp[i] = *devolucionToResponse(&devs[i], venta)
	}
	return resp, nil
}

func devolucionToResponse(d *model.Devolucion, v *model.Venta) *dto.DevolucionResponse {
	return &dto.DevolucionResponse{
		ID:             d.ID,
		FechaHora:      d.FechaHora.Format(time.RFC3339),
		VentaID:        d.VentaID,
		ClienteID:      d.ClienteID,
		PesoDevueltoKg: d.PesoDevueltoKg,
		PrecioPorKg:    v.PrecioPorKg,
		MontoDevuelto:  d.MontoDevuelto,
		Motivo:         d.Motivo,
	}
}
