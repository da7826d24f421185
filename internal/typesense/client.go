package typesense

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-painel-insights/internal/config"
	"github.com/prefeitura-rio/app-painel-insights/internal/migration/schemas"
	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
)

// MaxPageSize é o máximo de documentos por página aceito pelo Typesense
const MaxPageSize = 250

type Client struct {
	client     *typesense.Client
	collection string
	pageSize   int
}

// ImportResult resume uma importação de registros
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

func NewClient(cfg *config.Config) *Client {
	typesenseClient := typesense.NewClient(
		typesense.WithServer(cfg.TypesenseURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
	)

	pageSize := cfg.TypesensePageSize
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return &Client{
		client:     typesenseClient,
		collection: cfg.TypesenseCollection,
		pageSize:   pageSize,
	}
}

// GetClient retorna o cliente Typesense subjacente
func (c *Client) GetClient() *typesense.Client {
	return c.client
}

// Collection retorna o nome da collection de registros
func (c *Client) Collection() string {
	return c.collection
}

// Health verifica a conectividade com o servidor
func (c *Client) Health(ctx context.Context) error {
	ok, err := c.client.Health(ctx, 2*time.Second)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("typesense não está saudável")
	}
	return nil
}

// EnsureCollection cria a collection se ela ainda não existir.
// Retorna true quando a collection foi criada nesta chamada.
func (c *Client) EnsureCollection(ctx context.Context, def *schemas.SchemaDefinition) (bool, error) {
	_, err := c.client.Collection(c.collection).Retrieve(ctx)
	if err == nil {
		return false, nil
	}
	if !isNotFound(err) {
		return false, fmt.Errorf("erro ao verificar collection %s: %w", c.collection, err)
	}

	if _, err := c.client.Collections().Create(ctx, def.ToCollectionSchema(c.collection)); err != nil {
		return false, fmt.Errorf("erro ao criar collection %s: %w", c.collection, err)
	}
	return true, nil
}

// CountDocuments retorna o número de documentos da collection
func (c *Client) CountDocuments(ctx context.Context) (int, error) {
	result, err := c.client.Collection(c.collection).Documents().Search(ctx, &api.SearchCollectionParams{
		Q:       pointer.String("*"),
		PerPage: pointer.Int(0),
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao contar documentos de %s: %w", c.collection, err)
	}
	if result.Found == nil {
		return 0, nil
	}
	return int(*result.Found), nil
}

// FetchAll lê todos os documentos da collection, página a página, e os converte em registros
func (c *Client) FetchAll(ctx context.Context) ([]models.Record, error) {
	records := make([]models.Record, 0)

	for page := 1; ; page++ {
		result, err := c.client.Collection(c.collection).Documents().Search(ctx, &api.SearchCollectionParams{
			Q:       pointer.String("*"),
			Page:    pointer.Int(page),
			PerPage: pointer.Int(c.pageSize),
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao ler página %d de %s: %w", page, c.collection, err)
		}

		hits := 0
		if result.Hits != nil {
			for _, hit := range *result.Hits {
				if hit.Document == nil {
					continue
				}
				record, err := DocumentToRecord(*hit.Document)
				if err != nil {
					return nil, err
				}
				records = append(records, record)
				hits++
			}
		}

		found := 0
		if result.Found != nil {
			found = int(*result.Found)
		}
		if hits == 0 || len(records) >= found {
			break
		}
	}

	return records, nil
}

// ImportRecords faz upsert dos registros na collection, um documento por vez.
// Falhas individuais são contabilizadas sem interromper a importação.
func (c *Client) ImportRecords(ctx context.Context, records []models.Record) (*ImportResult, error) {
	result := &ImportResult{}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		doc, err := RecordToDocument(&records[i])
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("registro %d: %v", i, err))
			continue
		}

		if _, err := c.client.Collection(c.collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("registro %d: %v", i, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

// RecordToDocument converte um registro no documento Typesense: _id vira id e medidas
// ausentes são omitidas
func RecordToDocument(r *models.Record) (map[string]interface{}, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar registro: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("erro ao converter registro: %w", err)
	}

	delete(doc, "_id")
	if r.ID != "" {
		doc["id"] = r.ID
	}
	for _, measure := range []string{"intensity", "likelihood", "relevance"} {
		if doc[measure] == nil {
			delete(doc, measure)
		}
	}
	return doc, nil
}

// DocumentToRecord converte um documento Typesense de volta para registro
func DocumentToRecord(doc map[string]interface{}) (models.Record, error) {
	var record models.Record

	normalized := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		normalized[k] = v
	}
	if id, ok := normalized["id"]; ok {
		if _, exists := normalized["_id"]; !exists {
			normalized["_id"] = id
		}
		delete(normalized, "id")
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return record, fmt.Errorf("erro ao serializar documento: %w", err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("erro ao converter documento: %w", err)
	}
	return record, nil
}

func isNotFound(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "404") || strings.Contains(msg, "Not Found") || strings.Contains(msg, "Not found")
}
