package service

import (
	"context"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/apierror"
	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/infra"
	"github.com/erickbalderas17/rastro-pollos/internal/model"
	"github.com/erickbalderas17/rastro-pollos/internal/repository"
)

// maxCobradas caps GET /v1/boletas/cobradas.
const maxCobradas = 200

type VentaService interface {
	ObtenerPorID(ctx context.Context, id uint) (*dto.VentaResponse, error)
	ListarCobradas(ctx context.Context, limit int) ([]dto.BoletaCobradaItem, error)
	// TicketPDF renders the sale's ticket and returns the file path.
	TicketPDF(ctx context.Context, id uint) (string, error)
}

type ventaService struct {
	repo           repository.VentaRepository
	pdfStoragePath string
}

func NewVentaService(repo repository.VentaRepository, pdfStoragePath string) VentaService {
	return &ventaService{repo: repo, pdfStoragePath: pdfStoragePath}
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uint) (*dto.VentaResponse, error) {
	v, err := s.findVenta(ctx, id)
	if err != nil {
		return nil, err
	}
	return ventaToResponse(v), nil
}

func (s *ventaService) ListarCobradas(ctx context.Context, limit int) ([]dto.BoletaCobradaItem, error) {
	if limit <= 0 || limit > maxCobradas {
		limit = maxCobradas
	}
	ventas, err := s.repo.ListCobradas(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BoletaCobradaItem, len(ventas))
	for i := range ventas {
		v := &ventas[i]
		items[i].VentaResponse = *ventaToResponse(v)
		if v.Boleta != nil {
			items[i].FechaBoleta = v.Boleta.FechaHora.Format(time.RFC3339)
			items[i].NumPollos = v.Boleta.NumPollos
			items[i].NumCajas = v.Boleta.NumCajas
			items[i].TipoVenta = v.Boleta.TipoVenta
		}
	}
	return items, nil
}

func (s *ventaService) TicketPDF(ctx context.Context, id uint) (string, error) {
	v, err := s.findVenta(ctx, id)
	if err != nil {
		return "", err
	}
	return infra.GenerateTicketPDF(v, s.pdfStoragePath)
}

func (s *ventaService) findVenta(ctx context.Context, id uint) (*model.Venta, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("venta %d no encontrada", id)
		}
		return nil, err
	}
	return v, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:          v.ID,
		FechaHora:   v.FechaHora.Format(time.RFC3339),
		BoletaID:    v.BoletaID,
		ClienteID:   v.ClienteID,
		Cliente:     "OTRO",
		ProductoID:  v.ProductoID,
		PesoNetoKg:  v.PesoNetoKg,
		PrecioPorKg: v.PrecioPorKg,
		Total:       v.Total,
		MetodoPago:  v.MetodoPago,
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.Nombre
	}
	if v.Producto != nil {
		resp.Producto = v.Producto.Nombre
	}
	return resp
}
