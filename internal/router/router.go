package router

import (
	"time"

	_ "github.com/erickbalderas17/rastro-pollos/docs"
	"github.com/erickbalderas17/rastro-pollos/internal/config"
	"github.com/erickbalderas17/rastro-pollos/internal/handler"
	"github.com/erickbalderas17/rastro-pollos/internal/infra"
	"github.com/erickbalderas17/rastro-pollos/internal/middleware"
	"github.com/erickbalderas17/rastro-pollos/internal/model"
	"github.com/erickbalderas17/rastro-pollos/internal/repository"
	"github.com/erickbalderas17/rastro-pollos/internal/service"
	"github.com/erickbalderas17/rastro-pollos/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb and mailerCB may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailerCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	taraDefault, err := cfg.TaraDefault()
	if err != nil {
		log.Warn().Err(err).Msg("TARA_CAJA_DEFAULT invalida, se usa 0")
	}
	precioCache := infra.NewPrecioCache(rdb)

	// Statements can be mailed only with both a queue and an SMTP server.
	var emails service.EmailQueue
	if rdb != nil && cfg.SMTPHost != "" {
		emails = worker.NewDispatcher(rdb)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	precioRepo := repository.NewPrecioRepository(db)
	boletaRepo := repository.NewBoletaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	devolucionRepo := repository.NewDevolucionRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	precioSvc := service.NewPrecioService(precioRepo, productoRepo, clienteRepo, precioCache)
	clienteSvc := service.NewClienteService(clienteRepo, productoRepo, precioSvc)
	boletaSvc := service.NewBoletaService(boletaRepo, ventaRepo, movimientoRepo, clienteRepo, productoRepo, precioSvc, taraDefault)
	ventaSvc := service.NewVentaService(ventaRepo, cfg.PDFStoragePath)
	devolucionSvc := service.NewDevolucionService(devolucionRepo, ventaRepo, movimientoRepo)
	saldoSvc := service.NewSaldoService(movimientoRepo, clienteRepo, emails, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	preciosH := handler.NewPreciosHandler(precioSvc)
	boletasH := handler.NewBoletasHandler(boletaSvc, ventaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, devolucionSvc)
	devolucionesH := handler.NewDevolucionesHandler(devolucionSvc)
	saldosH := handler.NewSaldosHandler(saldoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb, mailerCB))

	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	auth.POST("/refresh", authH.Refresh)

	api := v1.Group("", middleware.JWTAuth(cfg.JWTSecret))
	api.GET("/auth/me", authH.Me)

	// The scale station only weighs and takes returns.
	ambos := middleware.RequireRole(model.RolCaja, model.RolBascula)
	caja := middleware.RequireRole(model.RolCaja)

	api.POST("/boletas", ambos, boletasH.Crear)
	api.GET("/boletas/abiertas", ambos, boletasH.ListarAbiertas)
	api.POST("/devoluciones", ambos, devolucionesH.Registrar)
	api.GET("/productos", ambos, preciosH.Productos)
	api.GET("/clientes", ambos, clientesH.Listar)

	cj := api.Group("", caja)
	cj.GET("/boletas/cobradas", boletasH.ListarCobradas)
	cj.GET("/boletas/:id", boletasH.Obtener)
	cj.POST("/boletas/:id/cobrar", boletasH.Cobrar)

	cj.GET("/ventas/:id", ventasH.Obtener)
	cj.GET("/ventas/:id/ticket.pdf", ventasH.Ticket)
	cj.GET("/ventas/:id/devoluciones", ventasH.Devoluciones)

	cj.POST("/clientes", clientesH.Crear)
	cj.GET("/clientes/:id", clientesH.Obtener)
	cj.DELETE("/clientes/:id", clientesH.Eliminar)

	cj.POST("/precios", preciosH.Registrar)
	cj.GET("/precios", preciosH.Listar)
	cj.GET("/precios/resolver", preciosH.Resolver)

	cj.GET("/saldos", saldosH.Listar)
	cj.GET("/clientes/:id/estado-cuenta", saldosH.EstadoCuenta)
	cj.GET("/clientes/:id/estado-cuenta.xlsx", saldosH.ExportarXLSX)
	cj.GET("/clientes/:id/estado-cuenta.pdf", saldosH.ExportarPDF)
	cj.POST("/clientes/:id/estado-cuenta/enviar", saldosH.Enviar)
	cj.POST("/clientes/:id/ajustes", saldosH.Ajuste)
	cj.POST("/clientes/:id/pagos", saldosH.Pago)

	// Swagger UI, disabled in production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
