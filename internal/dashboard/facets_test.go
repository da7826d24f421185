package dashboard

import (
	"testing"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildFacetIndex_FirstOccurrenceOrder(t *testing.T) {
	index := BuildFacetIndex(scenarioRecords())

	assert.Equal(t, []string{"USA", "India", "UK"}, index.Values(models.FieldCountry))
	assert.Equal(t, []string{"Energy", "Retail", "Government"}, index.Values(models.FieldSector))
}

func TestBuildFacetIndex_Empty(t *testing.T) {
	index := BuildFacetIndex(nil)

	for _, f := range models.Fields() {
		assert.NotNil(t, index.Values(f), f.Key())
		assert.Empty(t, index.Values(f), f.Key())
	}
}

func TestBuildFacetIndex_EndYearSkipsFalsy(t *testing.T) {
	records := []models.Record{
		{EndYear: ""},
		{EndYear: "2030"},
		{EndYear: "0"},
		{EndYear: "false"},
		{EndYear: "2027"},
		{EndYear: "true"},
		{EndYear: "2030"},
	}

	index := BuildFacetIndex(records)

	assert.Equal(t, []string{"2030", "2027", "true"}, index.Values(models.FieldEndYear))
}

func TestBuildFacetIndex_OtherFieldsKeepEmpty(t *testing.T) {
	records := []models.Record{
		{City: ""},
		{City: "Delhi"},
		{City: ""},
	}

	index := BuildFacetIndex(records)

	assert.Equal(t, []string{"", "Delhi"}, index.Values(models.FieldCity))
}

func TestBuildFacetIndex_ValueSetMatchesRecords(t *testing.T) {
	records := append(scenarioRecords(), scenarioRecords()...)
	index := BuildFacetIndex(records)

	for _, f := range models.Fields() {
		values := index.Values(f)

		seen := make(map[string]bool)
		for _, v := range values {
			assert.False(t, seen[v], "valor duplicado %q em %s", v, f.Key())
			seen[v] = true
		}

		expected := make(map[string]bool)
		for i := range records {
			v := records[i].Value(f)
			if f == models.FieldEndYear && isFalsy(v) {
				continue
			}
			expected[v] = true
		}
		assert.Equal(t, expected, seen, f.Key())
	}
}
