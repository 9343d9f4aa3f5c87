package router

import (
	"time"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/config"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/handler"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/middleware"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/repository"
	"github.com/RolandoGio/CERRAJERIA-sub000/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	servicioRepo := repository.NewServicioRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	comisionRepo := repository.NewComisionRepository(db)
	tarifaRepo := repository.NewTarifaComisionRepository(db)
	movimientoStockRepo := repository.NewMovimientoStockRepository(db)
	financieroRepo := repository.NewMovimientoFinancieroRepository(db)
	categoriaProductoRepo := repository.NewCategoriaProductoRepository(db)
	categoriaServicioRepo := repository.NewCategoriaServicioRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, categoriaProductoRepo, rdb)
	servicioSvc := service.NewServicioService(servicioRepo, categoriaServicioRepo)
	inventarioSvc := service.NewInventarioService(productoRepo, movimientoStockRepo)
	comisionSvc := service.NewComisionService(comisionRepo, tarifaRepo, usuarioRepo)
	ventaSvc := service.NewVentaService(ventaRepo, inventarioSvc, comisionSvc, productoRepo, servicioRepo)
	categoriaSvc := service.NewCategoriaService(categoriaProductoRepo, categoriaServicioRepo)
	tarifaSvc := service.NewTarifaService(tarifaRepo, categoriaProductoRepo)
	finanzasSvc := service.NewFinanzasService(financieroRepo)
	reporteSvc := service.NewReporteService(reporteRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	serviciosH := handler.NewServiciosHandler(servicioSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, ventaRepo, cfg.PDFStoragePath)
	comisionesH := handler.NewComisionesHandler(comisionSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	tarifasH := handler.NewTarifasHandler(tarifaSvc)
	finanzasH := handler.NewFinanzasHandler(finanzasSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required
	r.GET("/v1/precio/:id", consultaH.GetPrecio)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	todos := middleware.RequireRole(model.RolVendedor, model.RolAdministrador)
	admin := middleware.RequireRole(model.RolAdministrador)

	v1 := r.Group("/v1", jwtMW)
	{
		// Ventas — ambos roles registran y consultan; el servicio limita qué ve cada uno
		v1.POST("/ventas", todos, ventasH.RegistrarVenta)
		v1.GET("/ventas", todos, ventasH.ListarVentas)
		v1.GET("/ventas/:id", todos, ventasH.ObtenerVenta)
		v1.GET("/ventas/:id/recibo", todos, ventasH.DescargarRecibo)

		// Productos — lectura para ambos, escritura solo administrador
		v1.GET("/productos", todos, productosH.Listar)
		v1.GET("/productos/:id", todos, productosH.Obtener)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.PATCH("/:id/reactivar", productosH.Reactivar)
		}

		// Servicios — misma división de permisos
		v1.GET("/servicios", todos, serviciosH.Listar)
		v1.GET("/servicios/:id", todos, serviciosH.Obtener)
		servs := v1.Group("/servicios", admin)
		{
			servs.POST("", serviciosH.Crear)
			servs.PUT("/:id", serviciosH.Actualizar)
			servs.DELETE("/:id", serviciosH.Desactivar)
			servs.PATCH("/:id/reactivar", serviciosH.Reactivar)
		}

		// Inventario
		v1.GET("/inventario/movimientos", todos, inventarioH.ListarMovimientos)
		v1.GET("/inventario/alertas", todos, inventarioH.Alertas)
		v1.POST("/inventario/:id/ajuste", admin, inventarioH.AjustarStock)

		// Comisiones
		v1.GET("/comisiones", todos, comisionesH.Listar)
		v1.PATCH("/comisiones/:id/comentario", todos, comisionesH.ActualizarComentario)
		v1.DELETE("/comisiones/:id", todos, comisionesH.Eliminar)
		v1.POST("/comisiones", admin, comisionesH.CrearManual)
		v1.PATCH("/comisiones/:id/estado", admin, comisionesH.CambiarEstado)

		// Categorías — lectura para ambos, escritura solo administrador
		v1.GET("/categorias/productos", todos, categoriasH.ListarProducto)
		v1.GET("/categorias/servicios", todos, categoriasH.ListarServicio)
		catProd := v1.Group("/categorias/productos", admin)
		{
			catProd.POST("", categoriasH.CrearProducto)
			catProd.PUT("/:id", categoriasH.ActualizarProducto)
			catProd.DELETE("/:id", categoriasH.DesactivarProducto)
		}
		catServ := v1.Group("/categorias/servicios", admin)
		{
			catServ.POST("", categoriasH.CrearServicio)
			catServ.PUT("/:id", categoriasH.ActualizarServicio)
			catServ.DELETE("/:id", categoriasH.DesactivarServicio)
		}

		// Tarifas de comisión — solo administrador
		tarifas := v1.Group("/tarifas", admin)
		{
			tarifas.PUT("", tarifasH.Guardar)
			tarifas.GET("", tarifasH.Listar)
			tarifas.GET("/:id", tarifasH.ObtenerPorCategoria)
			tarifas.DELETE("/:id", tarifasH.Eliminar)
		}

		// Finanzas — solo administrador
		finanzas := v1.Group("/finanzas", admin)
		{
			finanzas.POST("", finanzasH.Registrar)
			finanzas.GET("", finanzasH.Listar)
			finanzas.GET("/resumen", finanzasH.Resumen)
		}

		// Reportes — solo administrador
		reportes := v1.Group("/reportes", admin)
		{
			reportes.GET("/ventas", reportesH.ResumenVentas)
			reportes.GET("/top-productos", reportesH.TopProductos)
			reportes.GET("/comisiones", reportesH.ComisionesPorVendedor)
		}

		// Usuarios — solo administrador
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
			usuarios.PATCH("/:id/reactivar", authH.ReactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
