package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/prefeitura-rio/app-painel-insights/docs"
	"github.com/prefeitura-rio/app-painel-insights/internal/api/handlers"
	"github.com/prefeitura-rio/app-painel-insights/internal/api/routes"
	"github.com/prefeitura-rio/app-painel-insights/internal/config"
	"github.com/prefeitura-rio/app-painel-insights/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-insights/internal/datasource"
	"github.com/prefeitura-rio/app-painel-insights/internal/observability"
	"github.com/prefeitura-rio/app-painel-insights/internal/typesense"
	"go.uber.org/zap"
)

// @title           Painel de Insights API
// @version         1.0
// @description     API do painel de insights: dataset, facetas de filtro, visões filtradas, resumo de intensidade e séries de gráficos
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao inicializar logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	observability.InitTracer(cfg, logger)
	defer observability.ShutdownTracer(logger)

	var metrics *observability.Metrics
	var recorder dashboard.Recorder
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
		recorder = metrics
	}

	source, err := datasource.New(cfg)
	if err != nil {
		logger.Fatal("fonte de dados inválida", zap.Error(err))
	}

	checks := map[string]handlers.DependencyChecker{}
	if cfg.DataSource == config.SourceTypesense {
		checks["typesense"] = typesense.NewClient(cfg)
	}

	cache := dashboard.NewViewCache(cfg.ViewCacheTTL(), cfg.ViewCacheMaxSize)
	engine := dashboard.NewEngine(source, cache, logger, recorder)

	// Carregamento único na inicialização; em caso de falha o painel sobe vazio e
	// /readiness fica 503 até um POST /api/v1/admin/reload bem sucedido
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.DataSourceTimeout()+5*time.Second)
	if err := engine.Load(loadCtx); err != nil {
		logger.Warn("servidor iniciado sem dataset", zap.Error(err))
	}
	cancelLoad()

	r := routes.SetupRouter(routes.Dependencies{
		Config:  cfg,
		Engine:  engine,
		Logger:  logger,
		Metrics: metrics,
		Checks:  checks,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("servidor iniciado",
			zap.String("port", cfg.ServerPort),
			zap.String("source", engine.SourceName()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
	}
}
