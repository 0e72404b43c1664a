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
	"gorm.io/gorm"
)

type BoletaService interface {
	Crear(ctx context.Context, req dto.CrearBoletaRequest) (*dto.BoletaResponse, error)
	ListarAbiertas(ctx context.Context) ([]dto.BoletaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.BoletaResponse, error)
	Cobrar(ctx context.Context, id uint, req dto.CobrarBoletaRequest) (*dto.VentaResponse, error)
}

type boletaService struct {
	repo           repository.BoletaRepository
	ventaRepo      repository.VentaRepository
	movimientoRepo repository.MovimientoRepository
	clienteRepo    repository.ClienteRepository
	productoRepo   repository.ProductoRepository
	precios        PrecioService
	taraDefault    decimal.Decimal
	now            func() time.Time
}

func NewBoletaService(
	repo repository.BoletaRepository,
	ventaRepo repository.VentaRepository,
	movimientoRepo repository.MovimientoRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	precios PrecioService,
	taraDefault decimal.Decimal,
) BoletaService {
	return &boletaService{
		repo:           repo,
		ventaRepo:      ventaRepo,
		movimientoRepo: movimientoRepo,
		clienteRepo:    clienteRepo,
		productoRepo:   productoRepo,
		precios:        precios,
		taraDefault:    taraDefault,
		now:            time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ────────────────────────────────────────────────────────────────────

func (s *boletaService) Crear(ctx context.Context, req dto.CrearBoletaRequest) (*dto.BoletaResponse, error) {
	producto, err := s.productoRepo.FindByID(ctx, req.ProductoID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("producto %d no encontrado", req.ProductoID)
		}
		return nil, err
	}
	if !producto.AceptaTipoVenta(req.TipoVenta) {
		return nil, apierror.Invalid("%s no se vende como %s", producto.Nombre, req.TipoVenta)
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
	if req.NumPollos < 0 || req.NumCajas < 0 {
		return nil, apierror.Invalid("num_pollos y num_cajas no pueden ser negativos")
	}

	b := &model.Boleta{
		FechaHora:   s.now(),
		ClienteID:   clienteID,
		ProductoID:  producto.ID,
		TipoVenta:   req.TipoVenta,
		NumPollos:   req.NumPollos,
		NumCajas:    req.NumCajas,
		PesoTotalKg: req.PesoTotalKg,
		Comentarios: strings.TrimSpace(req.Comentarios),
		Estado:      model.BoletaAbierta,
	}

	// Per-box detail overrides the declared totals.
	if len(req.Cajas) > 0 {
		total := decimal.Zero
		for i, peso := range req.Cajas {
			if !peso.IsPositive() {
				return nil, apierror.Invalid("el peso de la caja %d debe ser mayor a 0", i+1)
			}
			total = total.Add(peso)
			b.Detalle = append(b.Detalle, model.BoletaDetalle{NumCaja: i + 1, PesoBrutoCajaKg: peso})
		}
		b.PesoTotalKg = total
		b.NumCajas = len(req.Cajas)
	}
	if !b.PesoTotalKg.IsPositive() {
		return nil, apierror.Invalid("el peso total debe ser mayor a 0")
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	b.Producto = producto

	log.Info().
		Uint("boleta_id", b.ID).
		Str("producto", producto.Codigo).
		Str("peso_total_kg", b.PesoTotalKg.String()).
		Int("num_cajas", b.NumCajas).
		Msg("boleta registrada")

	return boletaToResponse(b), nil
}

func (s *boletaService) ListarAbiertas(ctx context.Context) ([]dto.BoletaResponse, error) {
	boletas, err := s.repo.ListAbiertas(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BoletaResponse, len(boletas))
	for i := range boletas {
		resp[i] = *boletaToResponse(&boletas[i])
	}
	return resp, nil
}

func (s *boletaService) ObtenerPorID(ctx context.Context, id uint) (*dto.BoletaResponse, error) {
	b, err := s.findBoleta(ctx, id)
	if err != nil {
		return nil, err
	}
	return boletaToResponse(b), nil
}

func (s *boletaService) findBoleta(ctx context.Context, id uint) (*model.Boleta, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apierror.NotFound("boleta %d no encontrada", id)
		}
		return nil, err
	}
	return b, nil
}

// ── Cobrar ───────────────────────────────────────────────────────────────────
//   1. Ticket must exist and be open
//   2. Resolve the price for the ticket's day (customer → general)
//   3. neto = bruto − cajas × tara; total = round(neto × precio, 2)
//   4. BEGIN TX: insert venta, close ticket (guarded), post credit movement
//   5. COMMIT

func (s *boletaService) Cobrar(ctx context.Context, id uint, req dto.CobrarBoletaRequest) (*dto.VentaResponse, error) {
	b, err := s.findBoleta(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Estado != model.BoletaAbierta {
		return nil, apierror.Conflict("la boleta %d ya fue cobrada", id)
	}

	tara := s.taraDefault
	if req.PesoCajaKg != nil {
		tara = *req.PesoCajaKg
	}
	if tara.IsNegative() {
		return nil, apierror.Invalid("el peso por caja no puede ser negativo")
	}

	precio, err := s.precios.Resolver(ctx, b.ClienteID, b.ProductoID, b.Fecha(), b.TipoVenta)
	if err != nil {
		return nil, err
	}
	if precio == nil {
		return nil, apierror.Invalid("no hay precio registrado para %s (%s) el %s", nombreProducto(b.Producto), b.TipoVenta, b.Fecha())
	}

	neto := PesoNeto(b.PesoTotalKg, b.NumCajas, tara)
	if !neto.IsPositive() {
		return nil, apierror.Invalid("el peso neto debe ser mayor a 0 (bruto %s kg, %d cajas de %s kg)",
			b.PesoTotalKg.String(), b.NumCajas, tara.String())
	}
	total := Importe(neto, *precio)

	venta := model.Venta{
		FechaHora:   s.now(),
		BoletaID:    b.ID,
		ClienteID:   b.ClienteID,
		ProductoID:  b.ProductoID,
		PesoNetoKg:  neto,
		PrecioPorKg: *precio,
		Total:       total,
		MetodoPago:  req.MetodoPago,
	}

	txErr := runTx(ctx, s.ventaRepo.DB(), func(tx *gorm.DB) error {
		cerrada, err := s.repo.CerrarTx(tx, b.ID)
		if err != nil {
			return err
		}
		if !cerrada {
			return apierror.Conflict("la boleta %d ya fue cobrada", id)
		}
		if err := s.ventaRepo.CreateTx(tx, &venta); err != nil {
			return err
		}
		if b.ClienteID != nil && req.MetodoPago == model.PagoCreditoCliente {
			return s.movimientoRepo.CreateTx(tx, &model.MovimientoCliente{
				FechaHora:    venta.FechaHora,
				ClienteID:    *b.ClienteID,
				Tipo:         model.MovimientoVenta,
				ReferenciaID: venta.ID,
				Monto:        total,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().
		Uint("boleta_id", b.ID).
		Uint("venta_id", venta.ID).
		Str("peso_neto_kg", neto.String()).
		Str("precio_por_kg", precio.String()).
		Str("total", total.StringFixed(2)).
		Str("metodo_pago", req.MetodoPago).
		Msg("boleta cobrada")

	venta.Cliente = b.Cliente
	venta.Producto = b.Producto
	return ventaToResponse(&venta), nil
}

// PesoNeto is the gross weight minus the tare of every box.
func PesoNeto(bruto decimal.Decimal, numCajas int, taraPorCaja decimal.Decimal) decimal.Decimal {
	return bruto.Sub(taraPorCaja.Mul(decimal.NewFromInt(int64(numCajas))))
}

// Importe rounds weight × price to cents, half away from zero.
func Importe(pesoKg, precioPorKg decimal.Decimal) decimal.Decimal {
	return pesoKg.Mul(precioPorKg).Round(2)
}

func nombreProducto(p *model.Producto) string {
	if p == nil {
		return "el producto"
	}
	return p.Nombre
}

func boletaToResponse(b *model.Boleta) *dto.BoletaResponse {
	resp := &dto.BoletaResponse{
		ID:          b.ID,
		FechaHora:   b.FechaHora.Format(time.RFC3339),
		ClienteID:   b.ClienteID,
		Cliente:     "OTRO",
		ProductoID:  b.ProductoID,
		TipoVenta:   b.TipoVenta,
		NumPollos:   b.NumPollos,
		NumCajas:    b.NumCajas,
		PesoTotalKg: b.PesoTotalKg,
		Comentarios: b.Comentarios,
		Estado:      b.Estado,
	}
	if b.Cliente != nil {
		resp.Cliente = b.Cliente.Nombre
	}
	if b.Producto != nil {
		resp.Producto = b.Producto.Nombre
	}
	for _, d := range b.Detalle {
		resp.Detalle = append(resp.Detalle, dto.BoletaDetalleResponse{
			NumCaja: d.NumCaja, PesoBrutoCajaKg: d.PesoBrutoCajaKg,
		})
	}
	return resp
}
