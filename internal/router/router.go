package router

import (
	"time"

	"aguanueva/internal/config"
	"aguanueva/internal/handler"
	"aguanueva/internal/middleware"
	"aguanueva/internal/repository"
	"aguanueva/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	municipioRepo := repository.NewMunicipioRepository(db)
	materiaRepo := repository.NewMateriaRepository(db)
	personasRepo := repository.NewDatosPersonalesRepository(db)
	expedienteRepo := repository.NewExpedienteRepository(db)
	datosRepo := repository.NewDatosExpedienteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	municipioSvc := service.NewMunicipioService(municipioRepo, rdb)
	materiaSvc := service.NewMateriaService(materiaRepo, rdb)
	personasSvc := service.NewDatosPersonalesService(personasRepo, municipioRepo)
	expedienteSvc := service.NewExpedienteService(expedienteRepo, datosRepo, personasRepo, municipioRepo, materiaRepo)
	datosSvc := service.NewDatosExpedienteService(datosRepo, expedienteRepo, materiaRepo)
	documentoSvc := service.NewDocumentoService(expedienteRepo, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	municipiosH := handler.NewMunicipiosHandler(municipioSvc)
	materiasH := handler.NewMateriasHandler(materiaSvc)
	personasH := handler.NewDatosPersonalesHandler(personasSvc)
	expedientesH := handler.NewExpedientesHandler(expedienteSvc)
	datosH := handler.NewDatosExpedientesHandler(datosSvc)
	documentosH := handler.NewDocumentosHandler(documentoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// The frontend sends a static x-api-key header; the check only runs when
	// a key is configured.
	api := r.Group("/api", middleware.APIKey(cfg.APIKey))
	{
		municipios := api.Group("/municipios")
		{
			municipios.POST("", municipiosH.Crear)
			municipios.GET("", municipiosH.Listar)
			municipios.GET("/:id", municipiosH.ObtenerPorID)
			municipios.GET("/buscar/nombre", municipiosH.BuscarPorNombre)
			municipios.PUT("/:id", municipiosH.Actualizar)
			municipios.DELETE("/:id", municipiosH.Eliminar)
		}

		materias := api.Group("/materias")
		{
			materias.POST("", materiasH.Crear)
			materias.GET("", materiasH.Listar)
			materias.GET("/:id", materiasH.ObtenerPorID)
			materias.GET("/tipo/:tipo", materiasH.ListarPorTipo)
			materias.GET("/buscar/nombre", materiasH.BuscarPorNombre)
			materias.PUT("/:id", materiasH.Actualizar)
			materias.DELETE("/:id", materiasH.Eliminar)
		}

		personas := api.Group("/datos-personales")
		{
			personas.POST("", personasH.Crear)
			personas.GET("", personasH.Listar)
			personas.GET("/:dni", personasH.ObtenerPorDNI)
			personas.GET("/buscar/nombre", personasH.BuscarPorNombre)
			personas.GET("/municipio/:id", personasH.ListarPorMunicipio)
			personas.PUT("/:dni", personasH.Actualizar)
			personas.DELETE("/:dni", personasH.Eliminar)
		}

		expedientes := api.Group("/expedientes")
		{
			expedientes.POST("", expedientesH.Crear)
			expedientes.POST("/completo", expedientesH.CrearCompleto)
			expedientes.GET("", expedientesH.Listar)
			expedientes.GET("/:id", expedientesH.ObtenerPorID)
			expedientes.GET("/:id/solicitud", documentosH.DescargarSolicitud)
			expedientes.GET("/codigo/:codigo/:hoja", expedientesH.ObtenerPorCodigo)
			expedientes.GET("/buscar/fechas", expedientesH.BuscarPorFechas)
			expedientes.GET("/dni/:dni", expedientesH.ListarPorDNI)
			expedientes.GET("/municipio/:id", expedientesH.ListarPorMunicipio)
			expedientes.PUT("/:id", expedientesH.Actualizar)
			expedientes.DELETE("/:id", expedientesH.Eliminar)
		}

		datos := api.Group("/datos-expedientes")
		{
			datos.POST("", datosH.Crear)
			datos.GET("/:id", datosH.ObtenerPorID)
			datos.GET("/expediente/:codigo", datosH.ListarPorExpediente)
			datos.GET("/buscar/fechas", datosH.BuscarPorFechas)
			datos.PUT("/:id", datosH.Actualizar)
			datos.DELETE("/:id", datosH.Eliminar)
		}
	}

	return r
}
