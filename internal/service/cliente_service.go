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
	"github.com/shopspring/decimal"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) ([]dto.ClienteListItem, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type clienteService struct {
	repo         repository.ClienteRepository
	productoRepo repository.ProductoRepository
	precios      PrecioService
	now          func() time.Time
}

func NewClienteService(repo repository.ClienteRepository, productoRepo repository.ProductoRepository, precios PrecioService) ClienteService {
	return &clienteService{repo: repo, productoRepo: productoRepo, precios: precios, now: time.Now}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.Invalid("el nombre del cliente es obligatorio")
	}
	c := &model.Cliente{Nombre: nombre, Referencia: strings.TrimSpace(req.Referencia)}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	log.Info().Uint("cliente_id", c.ID).Str("nombre", c.Nombre).Msg("cliente creado")
	return clienteToResponse(c), nil
}

// Listar attaches the whole-chicken normal price of the last three days to
// each customer, resolved the same way settlement would resolve it.
func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) ([]dto.ClienteListItem, error) {
	clientes, err := s.repo.List(ctx, filter.Q)
	if err != nil {
		return nil, err
	}

	hoy := s.now()
	fechas := [3]string{
		hoy.AddDate(0, 0, -2).Format(model.FormatoFecha),
		hoy.AddDate(0, 0, -1).Format(model.FormatoFecha),
		hoy.Format(model.FormatoFecha),
	}

	var polloID uint
	if p, err := s.productoRepo.FindByCodigo(ctx, model.CodigoPolloEntero); err == nil {
		polloID = p.ID
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	items := make([]dto.ClienteListItem, len(clientes))
	for i := range clientes {
		items[i].ClienteResponse = *clienteToResponse(&clientes[i])
		if polloID == 0 {
			continue
		}
		var precios [3]*decimal.Decimal
		for j, fecha := range fechas {
			id := clientes[i].ID
			precios[j], err = s.precios.Resolver(ctx, &id, polloID, fecha, model.TipoVentaNormal)
			if err != nil {
				return nil, err
			}
		}
		items[i].Precios = dto.PreciosRecientes{Antier: precios[0], Ayer: precios[1], Hoy: precios[2]}
	}
	return items, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("cliente %d no encontrado", id)
		}
		return nil, err
	}
	return clienteToResponse(c), nil
}

// Eliminar refuses to delete a customer that any other table still points to.
func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.ObtenerPorID(ctx, id); err != nil {
		return err
	}
	deps, err := s.repo.ContarDependencias(ctx, id)
	if err != nil {
		return err
	}
	if len(deps) > 0 {
		d := deps[0]
		return apierror.Conflict("no se puede eliminar el cliente %d: tiene %d registro(s) en %s", id, d.Cantidad, d.Tabla)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("cliente_id", id).Msg("cliente eliminado")
	return nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{ID: c.ID, Nombre: c.Nombre, Referencia: c.Referencia}
}
