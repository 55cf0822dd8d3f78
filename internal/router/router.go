package router

import (
	"time"

	"github.com/Carbyfah/magic-sub005/internal/config"
	"github.com/Carbyfah/magic-sub005/internal/handler"
	"github.com/Carbyfah/magic-sub005/internal/middleware"
	"github.com/Carbyfah/magic-sub005/internal/repository"
	"github.com/Carbyfah/magic-sub005/internal/service"
	"github.com/Carbyfah/magic-sub005/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// The dispatcher comes from the composition root (main) so that services and
// the worker pool share one queue client.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	casaID, _ := uuid.Parse(cfg.AgenciaCasaID)

	// ── Repositories ─────────────────────────────────────────────────────────
	agenciaRepo := repository.NewAgenciaRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	rutaRepo := repository.NewRutaRepository(db)
	tourRepo := repository.NewTourRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	gastoRepo := repository.NewGastoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	agenciaSvc := service.NewAgenciaService(agenciaRepo, casaID)
	catalogoSvc := service.NewCatalogoService(servicioRepo, rutaRepo, tourRepo)
	rutaSvc := service.NewRutaService(rutaRepo, agenciaRepo, vehiculoRepo, reservaRepo)
	tourSvc := service.NewTourService(tourRepo, agenciaRepo)
	cajaSvc := service.NewCajaService(cajaRepo, reservaRepo, casaID)
	liquidacionSvc := service.NewLiquidacionService(rutaRepo, reservaRepo, gastoRepo)
	reservaSvc := service.NewReservaService(reservaRepo, servicioRepo, rutaRepo, tourRepo, agenciaRepo, cajaSvc, dispatcher, casaID)
	reporteSvc := service.NewReporteService(rutaRepo, reservaRepo, cajaSvc, casaID)

	// ── Handlers ─────────────────────────────────────────────────────────────
	agenciasH := handler.NewAgenciasHandler(agenciaSvc)
	vehiculosH := handler.NewVehiculosHandler(vehiculoRepo)
	serviciosH := handler.NewServiciosHandler(catalogoSvc)
	rutasH := handler.NewRutasHandler(rutaSvc, liquidacionSvc)
	toursH := handler.NewToursHandler(tourSvc)
	reservasH := handler.NewReservasHandler(reservaSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		agencias := v1.Group("/agencias")
		{
			agencias.POST("", agenciasH.Crear)
			agencias.GET("", agenciasH.Listar)
			agencias.GET("/:id", agenciasH.Obtener)
			agencias.PUT("/:id", agenciasH.Actualizar)
			agencias.DELETE("/:id", agenciasH.Desactivar)
		}

		vehiculos := v1.Group("/vehiculos")
		{
			vehiculos.POST("", vehiculosH.Crear)
			vehiculos.GET("", vehiculosH.Listar)
			vehiculos.PUT("/:id", vehiculosH.Actualizar)
			vehiculos.DELETE("/:id", vehiculosH.Desactivar)
		}

		servicios := v1.Group("/servicios")
		{
			servicios.POST("", serviciosH.Crear)
			servicios.GET("", serviciosH.Listar)
			servicios.GET("/:id", serviciosH.Obtener)
			servicios.PUT("/:id", serviciosH.Actualizar)
			servicios.DELETE("/:id", serviciosH.Desactivar)
		}

		rutas := v1.Group("/rutas")
		{
			rutas.POST("", rutasH.Crear)
			rutas.GET("", rutasH.Listar)
			rutas.POST("/programadas", rutasH.Programar)
			rutas.GET("/programadas", rutasH.ListarProgramadas)
			rutas.PUT("/programadas/:id/vehiculo", rutasH.AsignarVehiculo)
			rutas.PUT("/programadas/:id/estado", rutasH.CambiarEstado)
			rutas.POST("/programadas/:id/gastos", rutasH.RegistrarGasto)
			rutas.GET("/programadas/:id/liquidacion", rutasH.Liquidacion)
		}

		tours := v1.Group("/tours")
		{
			tours.POST("", toursH.Crear)
			tours.GET("", toursH.Listar)
			tours.POST("/programados", toursH.Programar)
			tours.GET("/programados", toursH.ListarProgramados)
		}

		reservas := v1.Group("/reservas")
		{
			reservas.POST("", reservasH.Crear)
			reservas.GET("/:id", reservasH.Obtener)
			reservas.PUT("/:id", reservasH.Actualizar)
			reservas.DELETE("/:id", reservasH.Anular)
		}

		caja := v1.Group("/caja")
		{
			caja.GET("/diaria", cajaH.ReporteDiario)
			caja.GET("/metodo-pago/:id", cajaH.MetodoPago)
		}

		reportes := v1.Group("/reportes")
		{
			reportes.GET("/ocupacion", reportesH.OcupacionPorFecha)
			reportes.GET("/ocupacion/:id", reportesH.Ocupacion)
			reportes.GET("/control-ventas", reportesH.ControlVentas)
			reportes.GET("/cuentas-agencia", reportesH.CuentasPorAgencia)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
