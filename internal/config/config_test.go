package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, SourceHTTP, cfg.DataSource)
	assert.Equal(t, "http://localhost:5000/api/data", cfg.DataSourceURL)
	assert.Equal(t, 30*time.Second, cfg.DataSourceTimeout())
	assert.Equal(t, "insights", cfg.TypesenseCollection)
	assert.Equal(t, 250, cfg.TypesensePageSize)
	assert.Equal(t, 5*time.Minute, cfg.ViewCacheTTL())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.TracingEnabled)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_SOURCE", "Typesense")
	t.Setenv("TYPESENSE_HOST", "search.internal")
	t.Setenv("TYPESENSE_PORT", "443")
	t.Setenv("TYPESENSE_PROTOCOL", "https")
	t.Setenv("TYPESENSE_PAGE_SIZE", "100")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, SourceTypesense, cfg.DataSource)
	assert.Equal(t, "https://search.internal:443", cfg.TypesenseURL())
	assert.Equal(t, 100, cfg.TypesensePageSize)
	assert.True(t, cfg.TracingEnabled)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfig_InvalidValuesFallBackOrFail(t *testing.T) {
	t.Run("inteiro inválido usa default", func(t *testing.T) {
		t.Setenv("VIEW_CACHE_MAX_SIZE", "muitos")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 500, cfg.ViewCacheMaxSize)
	})

	t.Run("fonte desconhecida", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "mongo")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DataSource")
	})

	t.Run("page size acima do limite do Typesense", func(t *testing.T) {
		t.Setenv("TYPESENSE_PAGE_SIZE", "1000")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TypesensePageSize")
	})

	t.Run("fonte file sem arquivo", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "file")
		t.Setenv("DATA_FILE", "")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DataFile")
	})
}
