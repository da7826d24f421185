package dashboard

import (
	"context"
	"testing"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_InitialState(t *testing.T) {
	s := NewSession()

	assert.Empty(t, s.Records())
	assert.Empty(t, s.Filtered())
	assert.True(t, s.Selection().IsEmpty())
	assert.Nil(t, s.Extremes().Max)
	assert.False(t, s.Dataset().Loaded())
}

func TestSession_LoadAndFilter(t *testing.T) {
	s := NewSession()
	source := &stubSource{records: scenarioRecords()}

	require.NoError(t, s.Load(context.Background(), source))

	assert.Len(t, s.Records(), 4)
	assert.Equal(t, []string{"USA", "India", "UK"}, s.Facets().Values(models.FieldCountry))
	assert.Equal(t, "india", s.Extremes().Max.Title)
	assert.Equal(t, "uk", s.Extremes().Min.Title)

	s.Select(models.FieldCountry, "USA")
	assert.Equal(t, []string{"us-energy", "us-retail"}, titles(s.Filtered()))
	assert.Equal(t, "us-energy", s.Extremes().Max.Title)
	assert.Equal(t, "us-retail", s.Extremes().Min.Title)

	require.NoError(t, s.SelectByName("sector", "Energy"))
	assert.Equal(t, []string{"us-energy"}, titles(s.Filtered()))

	s.Reset()
	assert.Len(t, s.Filtered(), 4)
}

func TestSession_RecomputesOnlyWhenDirty(t *testing.T) {
	s := NewSession()
	s.Install(NewDataset(scenarioRecords(), "stub"))
	s.Select(models.FieldCountry, "USA")

	first := s.Filtered()
	assert.False(t, s.dirty)

	s.Select(models.FieldCountry, "USA")
	assert.False(t, s.dirty, "mesmo valor não invalida a visão")
	second := s.Filtered()
	assert.Same(t, &first[0], &second[0])

	s.Select(models.FieldCountry, "India")
	assert.True(t, s.dirty)
	assert.Equal(t, []string{"india"}, titles(s.Filtered()))
}

func TestSession_FacetsIgnoreSelection(t *testing.T) {
	s := NewSession()
	s.Install(NewDataset(scenarioRecords(), "stub"))

	s.Select(models.FieldCountry, "UK")

	assert.Equal(t, []string{"USA", "India", "UK"}, s.Facets().Values(models.FieldCountry))
}

func TestSession_FailedLoadKeepsState(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Load(context.Background(), &stubSource{records: scenarioRecords()}))
	s.Select(models.FieldSector, "Energy")
	before := s.Dataset()

	err := s.Load(context.Background(), &stubSource{err: errUnavailable})

	assert.ErrorIs(t, err, ErrDataSourceFailure)
	assert.Same(t, before, s.Dataset())
	assert.Equal(t, "Energy", s.Selection().Get(models.FieldSector))
	assert.Len(t, s.Filtered(), 2)
}

func TestSession_SelectByNameUnknownField(t *testing.T) {
	s := NewSession()

	err := s.SelectByName("citys", "Delhi")

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.True(t, s.Selection().IsEmpty())
}

func TestSession_SelectionIsCopy(t *testing.T) {
	s := NewSession()
	s.Select(models.FieldTopic, "oil")

	sel := s.Selection()
	sel[models.FieldTopic] = "gas"

	assert.Equal(t, "oil", s.Selection().Get(models.FieldTopic))
}
