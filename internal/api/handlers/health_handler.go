package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-painel-insights/internal/dashboard"
)

// DependencyChecker verifica uma dependência externa (ex.: Typesense)
type DependencyChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	engine       *dashboard.Engine
	dependencies map[string]DependencyChecker
}

// NewHealthHandler cria um novo handler de health check.
// dependencies pode ser nil quando a fonte de dados não tem dependência verificável.
func NewHealthHandler(engine *dashboard.Engine, dependencies map[string]DependencyChecker) *HealthHandler {
	if dependencies == nil {
		dependencies = make(map[string]DependencyChecker)
	}
	return &HealthHandler{
		engine:       engine,
		dependencies: dependencies,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Dataset   *DatasetStatus    `json:"dataset,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// DatasetStatus descreve o dataset instalado
type DatasetStatus struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Records  int    `json:"records"`
	LoadedAt string `json:"loaded_at"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (dataset carregado e dependências acessíveis)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := h.check(ctx, "ready", "not_ready")
	h.respond(c, response, "not_ready")
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := h.check(ctx, "healthy", "unhealthy")
	if ds := h.engine.Dataset(); ds.Loaded() {
		response.Dataset = &DatasetStatus{
			ID:       ds.ID,
			Source:   ds.Source,
			Records:  ds.Len(),
			LoadedAt: ds.LoadedAt.UTC().Format(time.RFC3339),
		}
	}
	h.respond(c, response, "unhealthy")
}

func (h *HealthHandler) check(ctx context.Context, okStatus, failStatus string) HealthResponse {
	response := HealthResponse{
		Status:    okStatus,
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.engine.Ready(); err != nil {
		response.Checks["dataset"] = "failed"
		response.Status = failStatus
		response.Error = err.Error()
	} else {
		response.Checks["dataset"] = "ok"
	}

	for name, dep := range h.dependencies {
		if err := dep.Health(ctx); err != nil {
			response.Checks[name] = "failed"
			response.Status = failStatus
			if response.Error == "" {
				response.Error = name + " not available"
			}
			continue
		}
		response.Checks[name] = "ok"
	}

	return response
}

func (h *HealthHandler) respond(c *gin.Context, response HealthResponse, failStatus string) {
	statusCode := http.StatusOK
	if response.Status == failStatus {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}
