package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-painel-insights/internal/api/handlers"
	"github.com/prefeitura-rio/app-painel-insights/internal/config"
	"github.com/prefeitura-rio/app-painel-insights/internal/dashboard"
	middlewares "github.com/prefeitura-rio/app-painel-insights/internal/middleware"
	"github.com/prefeitura-rio/app-painel-insights/internal/observability"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies agrupa o que o router precisa; Metrics nil desabilita /metrics
type Dependencies struct {
	Config  *config.Config
	Engine  *dashboard.Engine
	Logger  *zap.Logger
	Metrics *observability.Metrics
	Checks  map[string]handlers.DependencyChecker
}

func SetupRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.RequestTracing())
	if deps.Metrics != nil {
		r.Use(middlewares.RequestMetrics(deps.Metrics))
	}
	r.Use(corsMiddleware(deps.Config.CORSAllowedOrigin))

	dashboardHandler := handlers.NewDashboardHandler(deps.Engine)
	healthHandler := handlers.NewHealthHandler(deps.Engine, deps.Checks)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	// Contrato da API de dados original
	r.GET("/api/data", dashboardHandler.GetData)

	api := r.Group("/api/v1")
	{
		api.GET("/facets", dashboardHandler.GetFacets)
		api.GET("/records", dashboardHandler.GetRecords)
		api.GET("/summary", dashboardHandler.GetSummary)
		api.GET("/charts", dashboardHandler.GetCharts)
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.POST("/admin/reload", dashboardHandler.Reload)
	}

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
