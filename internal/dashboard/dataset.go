package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-painel-insights/internal/models"
)

// DataSource fornece a coleção completa de registros
type DataSource interface {
	Name() string
	GetData(ctx context.Context) ([]models.Record, error)
}

// Dataset é um snapshot imutável dos registros carregados e do seu índice de facetas
type Dataset struct {
	ID       string
	Source   string
	LoadedAt time.Time
	Records  []models.Record
	Facets   models.FacetIndex
}

// NewDataset cria o snapshot e calcula o índice de facetas uma única vez
func NewDataset(records []models.Record, source string) *Dataset {
	if records == nil {
		records = []models.Record{}
	}
	return &Dataset{
		ID:       uuid.NewString(),
		Source:   source,
		LoadedAt: time.Now(),
		Records:  records,
		Facets:   BuildFacetIndex(records),
	}
}

// EmptyDataset representa o estado anterior ao primeiro carregamento bem sucedido
func EmptyDataset() *Dataset {
	return &Dataset{
		Records: []models.Record{},
		Facets:  BuildFacetIndex(nil),
	}
}

// Loaded indica se o dataset veio de um carregamento bem sucedido
func (d *Dataset) Loaded() bool {
	return d != nil && d.ID != ""
}

// Len retorna o número de registros
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// fetch executa a única suspensão assíncrona: a leitura da fonte de dados
func fetch(ctx context.Context, source DataSource) (*Dataset, error) {
	records, err := source.GetData(ctx)
	if err != nil {
		return nil, wrapSourceError(source, err)
	}
	return NewDataset(records, source.Name()), nil
}
