package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

// HTTPSource lê o array JSON de registros de um endpoint HTTP
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource cria uma fonte HTTP com o timeout informado
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string {
	return "http"
}

// GetData faz um GET no endpoint e decodifica a resposta
func (s *HTTPSource) GetData(ctx context.Context) ([]models.Record, error) {
	ctx, span := otel.Tracer("datasource").Start(ctx, "datasource.http.get")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", s.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := s.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("erro ao requisitar %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("status %d de %s: %s", resp.StatusCode, s.url, string(body))
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	records, err := decodeRecords(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("datasource.records", len(records)))
	return records, nil
}

// decodeRecords decodifica um array JSON de registros; null vira lista vazia
func decodeRecords(r io.Reader) ([]models.Record, error) {
	var records []models.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("resposta não é um array de registros: %w", err)
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}
