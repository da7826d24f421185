package schemas

import (
	"testing"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsV1_FilterFieldsAreFaceted(t *testing.T) {
	schema := InsightsV1()

	byName := make(map[string]bool)
	for _, f := range schema.Fields {
		byName[f.Name] = f.Facet != nil && *f.Facet
	}

	for _, f := range models.Fields() {
		faceted, ok := byName[f.Key()]
		require.True(t, ok, "campo %s ausente do schema", f.Key())
		assert.True(t, faceted, "campo %s deveria ser facetado", f.Key())
	}
}

func TestToCollectionSchema(t *testing.T) {
	def := InsightsV1()
	schema := def.ToCollectionSchema("insights_test")

	assert.Equal(t, "insights_test", schema.Name)
	assert.Len(t, schema.Fields, len(def.Fields))
	assert.Nil(t, schema.DefaultSortingField)
	assert.Nil(t, schema.EnableNestedFields)
	assert.Contains(t, def.FieldNames(), "intensity")
}
