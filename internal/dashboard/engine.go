package dashboard

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Recorder recebe os eventos do engine relevantes para métricas
type Recorder interface {
	DatasetLoaded(source string, records int)
	DatasetLoadFailed(source string)
	ViewCacheHit()
	ViewCacheMiss()
}

type nopRecorder struct{}

func (nopRecorder) DatasetLoaded(string, int) {}
func (nopRecorder) DatasetLoadFailed(string)  {}
func (nopRecorder) ViewCacheHit()             {}
func (nopRecorder) ViewCacheMiss()            {}

// View é o resultado do pipeline filtro → extremos → séries para uma seleção
type View struct {
	DatasetID string           `json:"dataset_id"`
	Selection models.Selection `json:"selection"`
	Total     int              `json:"total"`
	Matched   int              `json:"matched"`
	Records   []models.Record  `json:"records"`
	Extremes  models.Extremes  `json:"-"`
	Summary   Summary          `json:"summary"`
	Charts    ChartSet         `json:"charts"`
}

// Engine mantém o dataset da aplicação, compartilhado por todas as requisições
type Engine struct {
	source   DataSource
	current  atomic.Pointer[Dataset]
	cache    *ViewCache
	logger   *zap.Logger
	recorder Recorder
}

// NewEngine cria um novo engine; cache, logger e recorder podem ser nil
func NewEngine(source DataSource, cache *ViewCache, logger *zap.Logger, recorder Recorder) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	e := &Engine{
		source:   source,
		cache:    cache,
		logger:   logger.Named("dashboard"),
		recorder: recorder,
	}
	e.current.Store(EmptyDataset())
	return e
}

// Load busca os dados uma vez e instala o dataset.
// Em caso de falha o erro é registrado e o dataset anterior (normalmente vazio) é mantido.
func (e *Engine) Load(ctx context.Context) error {
	ctx, span := otel.Tracer("dashboard").Start(ctx, "dashboard.load")
	defer span.End()

	sourceName := e.SourceName()
	span.SetAttributes(attribute.String("dashboard.source", sourceName))

	start := time.Now()
	var ds *Dataset
	err := errNoSource
	if e.source != nil {
		ds, err = fetch(ctx, e.source)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "data source failure")
		e.recorder.DatasetLoadFailed(sourceName)
		e.logger.Error("falha ao carregar dataset",
			zap.String("source", sourceName),
			zap.Error(err),
		)
		return err
	}

	e.current.Store(ds)
	e.recorder.DatasetLoaded(sourceName, ds.Len())
	span.SetAttributes(
		attribute.String("dashboard.dataset_id", ds.ID),
		attribute.Int("dashboard.records", ds.Len()),
	)
	e.logger.Info("dataset carregado",
		zap.String("source", sourceName),
		zap.String("dataset_id", ds.ID),
		zap.Int("records", ds.Len()),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// SourceName retorna o nome da fonte de dados configurada
func (e *Engine) SourceName() string {
	if e.source == nil {
		return "none"
	}
	return e.source.Name()
}

// Dataset retorna o dataset atual (vazio antes do primeiro carregamento)
func (e *Engine) Dataset() *Dataset {
	return e.current.Load()
}

// Ready retorna ErrDatasetNotLoaded enquanto nenhum carregamento teve sucesso
func (e *Engine) Ready() error {
	if !e.Dataset().Loaded() {
		return ErrDatasetNotLoaded
	}
	return nil
}

// View aplica a seleção ao dataset atual e deriva extremos e séries
func (e *Engine) View(ctx context.Context, sel models.Selection) *View {
	ds := e.Dataset()

	var key string
	if e.cache != nil && ds.Loaded() {
		key = e.cache.Key(ds.ID, sel)
		if cached := e.cache.Get(key); cached != nil {
			e.recorder.ViewCacheHit()
			return cached
		}
		e.recorder.ViewCacheMiss()
	}

	_, span := otel.Tracer("dashboard").Start(ctx, "dashboard.view")
	defer span.End()

	view := Evaluate(ds, sel)
	span.SetAttributes(
		attribute.Int("dashboard.total", view.Total),
		attribute.Int("dashboard.matched", view.Matched),
		attribute.Int("dashboard.active_filters", len(sel.Active())),
	)

	if key != "" {
		e.cache.Set(key, view)
	}
	return view
}

// Evaluate executa o pipeline completo para um dataset e uma seleção, sem cache
func Evaluate(ds *Dataset, sel models.Selection) *View {
	if ds == nil {
		ds = EmptyDataset()
	}
	filtered := ApplyFilters(ds.Records, sel)
	extremes := DeriveExtremes(filtered)

	return &View{
		DatasetID: ds.ID,
		Selection: sel,
		Total:     ds.Len(),
		Matched:   len(filtered),
		Records:   filtered,
		Extremes:  extremes,
		Summary:   BuildSummary(extremes),
		Charts:    BuildCharts(filtered),
	}
}
