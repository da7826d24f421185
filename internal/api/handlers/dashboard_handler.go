package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-painel-insights/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"github.com/prefeitura-rio/app-painel-insights/internal/utils"
)

// Parâmetros de query que não são filtros
var reservedParams = map[string]bool{
	"page":     true,
	"per_page": true,
}

const maxPerPage = 1000

// DashboardHandler expõe o dataset carregado, as facetas e as visões filtradas
type DashboardHandler struct {
	engine *dashboard.Engine
}

// NewDashboardHandler cria um novo handler do painel
func NewDashboardHandler(engine *dashboard.Engine) *DashboardHandler {
	return &DashboardHandler{
		engine: engine,
	}
}

// FacetDescriptor descreve um seletor de filtro
type FacetDescriptor struct {
	Field    string   `json:"field" example:"country"`
	Label    string   `json:"label" example:"Country"`
	Options  []string `json:"options"`
	Selected string   `json:"selected,omitempty" example:"India"`
}

// FacetsResponse representa a resposta de /facets
type FacetsResponse struct {
	DatasetID string            `json:"dataset_id"`
	Total     int               `json:"total"`
	Facets    []FacetDescriptor `json:"facets"`
}

// RecordsResponse representa a resposta de /records
type RecordsResponse struct {
	DatasetID string           `json:"dataset_id"`
	Selection models.Selection `json:"selection" swaggertype:"object"`
	Total     int              `json:"total"`
	Matched   int              `json:"matched"`
	Page      int              `json:"page,omitempty"`
	PerPage   int              `json:"per_page,omitempty"`
	Records   []models.Record  `json:"records"`
}

// SummaryResponse representa a resposta de /summary
type SummaryResponse struct {
	Selection models.Selection  `json:"selection" swaggertype:"object"`
	Matched   int               `json:"matched"`
	Summary   dashboard.Summary `json:"summary"`
}

// ChartsResponse representa a resposta de /charts
type ChartsResponse struct {
	Selection models.Selection   `json:"selection" swaggertype:"object"`
	Matched   int                `json:"matched"`
	Charts    dashboard.ChartSet `json:"charts"`
}

// DashboardResponse reúne facetas, resumo, séries e registros em uma única resposta
type DashboardResponse struct {
	DatasetID string             `json:"dataset_id"`
	Selection models.Selection   `json:"selection" swaggertype:"object"`
	Total     int                `json:"total"`
	Matched   int                `json:"matched"`
	Facets    []FacetDescriptor  `json:"facets"`
	Summary   dashboard.Summary  `json:"summary"`
	Charts    dashboard.ChartSet `json:"charts"`
	Records   []models.Record    `json:"records"`
}

// ReloadResponse representa a resposta de /admin/reload
type ReloadResponse struct {
	DatasetID string `json:"dataset_id"`
	Source    string `json:"source"`
	Records   int    `json:"records"`
}

// GetData godoc
// @Summary Dataset completo
// @Description Retorna o array JSON com todos os registros carregados, no mesmo formato da API de dados original.
// @Tags data
// @Produce json
// @Success 200 {array} models.Record
// @Failure 503 {object} map[string]string "Dataset ainda não carregado"
// @Router /api/data [get]
func (h *DashboardHandler) GetData(c *gin.Context) {
	ds := h.engine.Dataset()
	if !ds.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Dataset indisponível",
			"details": dashboard.ErrDatasetNotLoaded.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ds.Records)
}

// GetFacets godoc
// @Summary Lista os filtros disponíveis
// @Description Retorna, para cada um dos nove campos filtráveis, os valores distintos em ordem de primeira ocorrência.
// @Description As opções não dependem da seleção; filtros informados na query aparecem apenas em "selected".
// @Tags dashboard
// @Produce json
// @Param end_year query string false "Filtro por ano final"
// @Param country query string false "Filtro por país"
// @Success 200 {object} FacetsResponse
// @Failure 400 {object} map[string]string "Parâmetro de filtro desconhecido"
// @Router /api/v1/facets [get]
func (h *DashboardHandler) GetFacets(c *gin.Context) {
	sel, ok := h.selection(c)
	if !ok {
		return
	}

	ds := h.engine.Dataset()
	c.JSON(http.StatusOK, FacetsResponse{
		DatasetID: ds.ID,
		Total:     ds.Len(),
		Facets:    describeFacets(ds.Facets, sel),
	})
}

// GetRecords godoc
// @Summary Registros filtrados
// @Description Aplica os filtros (igualdade exata, AND entre campos) e retorna os registros na ordem do dataset.
// @Description Sem per_page todos os registros filtrados são retornados.
// @Tags dashboard
// @Produce json
// @Param end_year query string false "Filtro por ano final (alias: endYear)"
// @Param topic query string false "Filtro por tópico"
// @Param sector query string false "Filtro por setor"
// @Param region query string false "Filtro por região"
// @Param pestle query string false "Filtro por PESTLE"
// @Param source query string false "Filtro por fonte"
// @Param swot query string false "Filtro por SWOT"
// @Param country query string false "Filtro por país"
// @Param city query string false "Filtro por cidade"
// @Param page query int false "Página (mínimo: 1)" minimum(1) default(1)
// @Param per_page query int false "Registros por página (máximo: 1000)" minimum(1) maximum(1000)
// @Success 200 {object} RecordsResponse
// @Failure 400 {object} map[string]string "Parâmetro inválido"
// @Router /api/v1/records [get]
func (h *DashboardHandler) GetRecords(c *gin.Context) {
	sel, ok := h.selection(c)
	if !ok {
		return
	}

	page := parseIntQuery(c, "page", 1)
	perPage := parseIntQuery(c, "per_page", 0)
	if page < 1 || perPage < 0 || perPage > maxPerPage {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros de paginação inválidos",
			"details": "page deve ser >= 1 e per_page entre 1 e 1000",
		})
		return
	}

	view := h.engine.View(c.Request.Context(), sel)
	resp := RecordsResponse{
		DatasetID: view.DatasetID,
		Selection: view.Selection,
		Total:     view.Total,
		Matched:   view.Matched,
		Records:   view.Records,
	}
	if perPage > 0 {
		resp.Page = page
		resp.PerPage = perPage
		resp.Records = paginate(view.Records, page, perPage)
	}

	c.JSON(http.StatusOK, resp)
}

// GetSummary godoc
// @Summary Resumo da visão filtrada
// @Description Retorna os títulos dos registros de maior e menor intensidade. Campos ausentes quando nenhum registro tem intensidade.
// @Tags dashboard
// @Produce json
// @Param country query string false "Filtro por país"
// @Param sector query string false "Filtro por setor"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} map[string]string "Parâmetro de filtro desconhecido"
// @Router /api/v1/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	sel, ok := h.selection(c)
	if !ok {
		return
	}

	view := h.engine.View(c.Request.Context(), sel)
	c.JSON(http.StatusOK, SummaryResponse{
		Selection: view.Selection,
		Matched:   view.Matched,
		Summary:   view.Summary,
	})
}

// GetCharts godoc
// @Summary Séries dos gráficos
// @Description Retorna as séries de barra (por país), linha (por ano) e pizza (intensidade por país) da visão filtrada.
// @Tags dashboard
// @Produce json
// @Param country query string false "Filtro por país"
// @Param sector query string false "Filtro por setor"
// @Success 200 {object} ChartsResponse
// @Failure 400 {object} map[string]string "Parâmetro de filtro desconhecido"
// @Router /api/v1/charts [get]
func (h *DashboardHandler) GetCharts(c *gin.Context) {
	sel, ok := h.selection(c)
	if !ok {
		return
	}

	view := h.engine.View(c.Request.Context(), sel)
	c.JSON(http.StatusOK, ChartsResponse{
		Selection: view.Selection,
		Matched:   view.Matched,
		Charts:    view.Charts,
	})
}

// GetDashboard godoc
// @Summary Painel completo
// @Description Retorna facetas, resumo, séries e registros filtrados em uma única chamada.
// @Tags dashboard
// @Produce json
// @Param end_year query string false "Filtro por ano final (alias: endYear)"
// @Param topic query string false "Filtro por tópico"
// @Param sector query string false "Filtro por setor"
// @Param region query string false "Filtro por região"
// @Param pestle query string false "Filtro por PESTLE"
// @Param source query string false "Filtro por fonte"
// @Param swot query string false "Filtro por SWOT"
// @Param country query string false "Filtro por país"
// @Param city query string false "Filtro por cidade"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Parâmetro de filtro desconhecido"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	sel, ok := h.selection(c)
	if !ok {
		return
	}

	ds := h.engine.Dataset()
	view := h.engine.View(c.Request.Context(), sel)
	c.JSON(http.StatusOK, DashboardResponse{
		DatasetID: view.DatasetID,
		Selection: view.Selection,
		Total:     view.Total,
		Matched:   view.Matched,
		Facets:    describeFacets(ds.Facets, sel),
		Summary:   view.Summary,
		Charts:    view.Charts,
		Records:   view.Records,
	})
}

// Reload godoc
// @Summary Recarrega o dataset
// @Description Busca novamente os registros na fonte configurada. Em caso de falha o dataset atual é mantido.
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 502 {object} map[string]string "Falha na fonte de dados"
// @Router /api/v1/admin/reload [post]
func (h *DashboardHandler) Reload(c *gin.Context) {
	if err := h.engine.Load(c.Request.Context()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dashboard.ErrDataSourceFailure) {
			status = http.StatusBadGateway
		}
		_ = c.Error(err)
		c.JSON(status, gin.H{
			"error":   "Erro ao recarregar dataset",
			"details": err.Error(),
		})
		return
	}

	ds := h.engine.Dataset()
	c.JSON(http.StatusOK, ReloadResponse{
		DatasetID: ds.ID,
		Source:    ds.Source,
		Records:   ds.Len(),
	})
}

// selection converte a query string em seleção; responde 400 e retorna false para campos desconhecidos
func (h *DashboardHandler) selection(c *gin.Context) (models.Selection, bool) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetro de filtro inválido",
			"details": err.Error(),
		})
		return sel, false
	}
	return sel, true
}

func parseSelection(c *gin.Context) (models.Selection, error) {
	var sel models.Selection
	var err error

	query := c.Request.URL.Query()
	names := make([]string, 0, len(query))
	for name := range query {
		if !reservedParams[name] {
			names = append(names, name)
		}
	}
	// ordem determinística: "end_year" é aplicado depois do alias "endYear" e prevalece
	sort.Strings(names)

	for _, name := range names {
		value := ""
		if values := query[name]; len(values) > 0 {
			value = values[0]
		}
		sel, err = dashboard.UpdateSelectionByName(sel, name, value)
		if err != nil {
			return sel, err
		}
	}
	return sel, nil
}

func describeFacets(index models.FacetIndex, sel models.Selection) []FacetDescriptor {
	facets := make([]FacetDescriptor, 0, models.FieldCount)
	for _, f := range models.Fields() {
		options := index.Values(f)
		if options == nil {
			options = []string{}
		}
		facets = append(facets, FacetDescriptor{
			Field:    f.Key(),
			Label:    utils.FieldLabel(f.Key()),
			Options:  options,
			Selected: sel.Get(f),
		})
	}
	return facets
}

// paginate assume page >= 1 e perPage >= 1; a página é comparada antes da multiplicação
// para que valores grandes de page não estourem o int
func paginate(records []models.Record, page, perPage int) []models.Record {
	if len(records) == 0 || page-1 > (len(records)-1)/perPage {
		return []models.Record{}
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// parseIntQuery converte parâmetro de query para int com valor padrão
func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
