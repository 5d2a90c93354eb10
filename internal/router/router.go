package router

import (
	"time"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/config"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/handler"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/middleware"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/repository"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/service"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New builds the gin engine with the full middleware chain and every route
// group wired. All dependency injection happens here.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// Repositories
	usuarioRepo := repository.NewUsuarioRepository(db)
	equipamentoRepo := repository.NewEquipamentoRepository(db)
	colaboradorRepo := repository.NewColaboradorRepository(db)
	emprestimoRepo := repository.NewEmprestimoRepository(db)

	// Services
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	equipamentoSvc := service.NewEquipamentoService(equipamentoRepo, emprestimoRepo)
	colaboradorSvc := service.NewColaboradorService(colaboradorRepo, emprestimoRepo)
	emprestimoSvc := service.NewEmprestimoService(emprestimoRepo, equipamentoRepo, colaboradorRepo, cfg.PrazoDevolucaoDias, dispatcher)
	relatorioSvc := service.NewRelatorioService(emprestimoRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	usuariosHandler := handler.NewUsuariosHandler(authSvc)
	equipamentosHandler := handler.NewEquipamentosHandler(equipamentoSvc)
	colaboradoresHandler := handler.NewColaboradoresHandler(colaboradorSvc)
	emprestimosHandler := handler.NewEmprestimosHandler(emprestimoSvc)
	historicoHandler := handler.NewHistoricoHandler(emprestimoSvc)
	relatoriosHandler := handler.NewRelatoriosHandler(relatorioSvc)

	// Public routes
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/registrar", authHandler.Registrar)
	}

	// Authenticated routes
	v1 := r.Group("/v1")
	v1.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		equipamentos := v1.Group("/equipamentos")
		{
			equipamentos.POST("", equipamentosHandler.Criar)
			equipamentos.GET("", equipamentosHandler.Listar)
			equipamentos.GET("/:id", equipamentosHandler.ObterPorID)
			equipamentos.PUT("/:id", equipamentosHandler.Atualizar)
			equipamentos.DELETE("/:id", equipamentosHandler.Excluir)
		}

		colaboradores := v1.Group("/colaboradores")
		{
			colaboradores.POST("", colaboradoresHandler.Criar)
			colaboradores.GET("", colaboradoresHandler.Listar)
			colaboradores.GET("/:id", colaboradoresHandler.ObterPorID)
			colaboradores.PUT("/:id", colaboradoresHandler.Atualizar)
			colaboradores.DELETE("/:id", colaboradoresHandler.Excluir)
		}

		emprestimos := v1.Group("/emprestimos")
		{
			emprestimos.POST("", emprestimosHandler.Criar)
			emprestimos.GET("", emprestimosHandler.Listar)
			emprestimos.GET("/:id", emprestimosHandler.ObterPorID)
			emprestimos.POST("/:id/devolver", emprestimosHandler.Devolver)
			emprestimos.DELETE("/:id", emprestimosHandler.Excluir)
		}

		v1.GET("/historico", historicoHandler.Listar)

		relatorios := v1.Group("/relatorios")
		{
			relatorios.GET("/movimentacoes.csv", relatoriosHandler.MovimentacoesCSV)
			relatorios.GET("/movimentacoes.pdf", relatoriosHandler.MovimentacoesPDF)
		}

		// User management is restricted to administrators.
		usuarios := v1.Group("/usuarios")
		usuarios.Use(middleware.RequireRole("administrador"))
		{
			usuarios.POST("", usuariosHandler.Criar)
			usuarios.GET("", usuariosHandler.Listar)
			usuarios.PUT("/:id", usuariosHandler.Atualizar)
			usuarios.DELETE("/:id", usuariosHandler.Desativar)
		}
	}

	// Swagger UI stays off in production.
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
