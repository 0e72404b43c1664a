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

// PrecioCache memoizes resolved prices. infra.PrecioCache implements it on
// Redis; a nil PrecioCache disables caching.
type PrecioCache interface {
	Get(ctx context.Context, clienteID *uint, productoID uint, fecha, tipo string) (precio *decimal.Decimal, llave string, hit bool)
	Set(ctx context.Context, llave string, precio *decimal.Decimal)
	Invalidar(ctx context.Context, fecha string)
}

type PrecioService interface {
	RegistrarDelDia(ctx context.Context, req dto.RegistrarPreciosRequest) (*dto.RegistrarPreciosResponse, error)
	Listar(ctx context.Context, filter dto.PrecioFilter) ([]dto.PrecioResponse, error)
	// Resolver returns the price in force, or nil when neither the customer
	// nor the general list has one for that day.
	Resolver(ctx context.Context, clienteID *uint, productoID uint, fecha, tipoVenta string) (*decimal.Decimal, error)
	ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error)
}

type precioService struct {
	repo         repository.PrecioRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	cache        PrecioCache
	now          func() time.Time
}

func NewPrecioService(
	repo repository.PrecioRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	cache PrecioCache,
) PrecioService {
	return &precioService{
		repo:         repo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// ── RegistrarDelDia ──────────────────────────────────────────────────────────
// Entries that cannot be stored are skipped, not rejected: the cashier fills
// a grid of prices and leaves most cells blank.

func (s *precioService) RegistrarDelDia(ctx context.Context, req dto.RegistrarPreciosRequest) (*dto.RegistrarPreciosResponse, error) {
	if _, err := time.Parse(model.FormatoFecha, req.Fecha); err != nil {
		return nil, apierror.Invalid("fecha invalida: %s", req.Fecha)
	}
	clienteID := normalizarCliente(req.ClienteID)
	if clienteID != nil {
		if _, err := s.clienteRepo.FindByID(ctx, *clienteID); err != nil {
			if repository.IsNotFound(err) {
				return nil, apierror.NotFound("cliente %d no encontrado", *clienteID)
			}
			return nil, err
		}
	}

	productos, err := s.productosPorID(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Precio
	for _, item := range req.Precios {
		p, ok := productos[item.ProductoID]
		if !ok || !p.AceptaTipoVenta(item.TipoVenta) {
			continue
		}
		precio, err := decimal.NewFromString(strings.TrimSpace(item.PrecioPorKg))
		if err != nil || !precio.IsPositive() {
			continue
		}
		rows = append(rows, model.Precio{
			ClienteID:   clienteID,
			ProductoID:  item.ProductoID,
			Fecha:       req.Fecha,
			TipoVenta:   item.TipoVenta,
			PrecioPorKg: precio.Round(2),
		})
	}

	if len(rows) > 0 {
		if err := s.repo.CreateBatch(ctx, rows); err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Invalidar(ctx, req.Fecha)
		}
	}

	log.Info().
		Str("fecha", req.Fecha).
		Interface("cliente_id", clienteID).
		Int("registrados", len(rows)).
		Int("omitidos", len(req.Precios)-len(rows)).
		Msg("precios registrados")

	return &dto.RegistrarPreciosResponse{
		Fecha:       req.Fecha,
		Registrados: len(rows),
		Omitidos:    len(req.Precios) - len(rows),
	}, nil
}

func (s *precioService) Listar(ctx context.Context, filter dto.PrecioFilter) ([]dto.PrecioResponse, error) {
	fecha := filter.Fecha
	if fecha == "" {
		fecha = s.now().Format(model.FormatoFecha)
	} else if _, err := time.Parse(model.FormatoFecha, fecha); err != nil {
		return nil, apierror.Invalid("fecha invalida: %s", fecha)
	}
	precios, err := s.repo.ListByFecha(ctx, fecha, filter.ClienteID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PrecioResponse, len(precios))
	for i := range precios {
		resp[i] = precioToResponse(&precios[i])
	}
	return resp, nil
}

// ── Resolver ─────────────────────────────────────────────────────────────────
// customer row (latest id) → general row (latest id) → nil

func (s *precioService) Resolver(ctx context.Context, clienteID *uint, productoID uint, fecha, tipoVenta string) (*decimal.Decimal, error) {
	clienteID = normalizarCliente(clienteID)
	var llave string
	if s.cache != nil {
		precio, k, hit := s.cache.Get(ctx, clienteID, productoID, fecha, tipoVenta)
		if hit {
			return precio, nil
		}
		llave = k
	}

	precio, err := s.resolverDB(ctx, clienteID, productoID, fecha, tipoVenta)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, llave, precio)
	}
	return precio, nil
}

func (s *precioService) resolverDB(ctx context.Context, clienteID *uint, productoID uint, fecha, tipoVenta string) (*decimal.Decimal, error) {
	if clienteID != nil {
		p, err := s.repo.FindUltimo(ctx, clienteID, productoID, fecha, tipoVenta)
		if err == nil {
			return &p.PrecioPorKg, nil
		}
		if !repository.IsNotFound(err) {
			return nil, err
		}
	}
	p, err := s.repo.FindUltimo(ctx, nil, productoID, fecha, tipoVenta)
	if err == nil {
		return &p.PrecioPorKg, nil
	}
	if repository.IsNotFound(err) {
		return nil, nil
	}
	return nil, err
}

func (s *precioService) ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.productoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i, p := range productos {
		tipos := []string{model.TipoVentaNormal}
		if p.AceptaTipoVenta(model.TipoVentaMayoreo) {
			tipos = append(tipos, model.TipoVentaMayoreo, model.TipoVentaMenudeo)
		}
		resp[i] = dto.ProductoResponse{
			ID: p.ID, Nombre: p.Nombre, Codigo: p.Codigo, Unidad: p.Unidad, TiposVenta: tipos,
		}
	}
	return resp, nil
}

func (s *precioService) productosPorID(ctx context.Context) (map[uint]model.Producto, error) {
	productos, err := s.productoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[uint]model.Producto, len(productos))
	for _, p := range productos {
		m[p.ID] = p
	}
	return m, nil
}

// normalizarCliente maps the "OTRO" customer (nil or 0) to nil.
func normalizarCliente(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func precioToResponse(p *model.Precio) dto.PrecioResponse {
	resp := dto.PrecioResponse{
		ID:          p.ID,
		ClienteID:   p.ClienteID,
		Cliente:     "OTRO",
		ProductoID:  p.ProductoID,
		Fecha:       p.Fecha,
		TipoVenta:   p.TipoVenta,
		PrecioPorKg: p.PrecioPorKg,
	}
	if p.Cliente != nil {
		resp.Cliente = p.Cliente.Nombre
	}
	if p.Producto != nil {
		resp.Producto = p.Producto.Nombre
	}
	return resp
}
