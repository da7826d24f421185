package schemas

import (
	"github.com/typesense/typesense-go/v3/typesense/api"
)

// InsightsV1 retorna o schema da collection de registros do painel.
// Os nove campos filtráveis são facetados; as medidas são opcionais porque o dataset original
// traz valores vazios.
func InsightsV1() *SchemaDefinition {
	return &SchemaDefinition{
		Version: "v1",
		Fields: []api.Field{
			{Name: "end_year", Type: "string", Facet: BoolPtr(true)},
			{Name: "topic", Type: "string", Facet: BoolPtr(true)},
			{Name: "sector", Type: "string", Facet: BoolPtr(true)},
			{Name: "region", Type: "string", Facet: BoolPtr(true)},
			{Name: "pestle", Type: "string", Facet: BoolPtr(true)},
			{Name: "source", Type: "string", Facet: BoolPtr(true)},
			{Name: "swot", Type: "string", Facet: BoolPtr(true)},
			{Name: "country", Type: "string", Facet: BoolPtr(true)},
			{Name: "city", Type: "string", Facet: BoolPtr(true)},
			{Name: "intensity", Type: "float", Facet: BoolPtr(false), Optional: BoolPtr(true)},
			{Name: "likelihood", Type: "float", Facet: BoolPtr(false), Optional: BoolPtr(true)},
			{Name: "relevance", Type: "float", Facet: BoolPtr(false), Optional: BoolPtr(true)},
			{Name: "year", Type: "string", Facet: BoolPtr(true)},
			{Name: "title", Type: "string", Facet: BoolPtr(false)},
			{Name: "color", Type: "string", Facet: BoolPtr(false), Optional: BoolPtr(true)},
		},
	}
}
