package datasource

import (
	"context"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// documentFetcher é o subconjunto do cliente Typesense usado pela fonte
type documentFetcher interface {
	Collection() string
	FetchAll(ctx context.Context) ([]models.Record, error)
}

// TypesenseSource lê todos os documentos de uma collection Typesense
type TypesenseSource struct {
	client documentFetcher
}

func NewTypesenseSource(client documentFetcher) *TypesenseSource {
	return &TypesenseSource{client: client}
}

func (s *TypesenseSource) Name() string {
	return "typesense"
}

func (s *TypesenseSource) GetData(ctx context.Context) ([]models.Record, error) {
	ctx, span := otel.Tracer("datasource").Start(ctx, "datasource.typesense.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("typesense.collection", s.client.Collection()))

	records, err := s.client.FetchAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("datasource.records", len(records)))
	return records, nil
}
