// Package datasource implementa as fontes de onde o painel obtém o dataset completo.
package datasource

import (
	"fmt"

	"github.com/prefeitura-rio/app-painel-insights/internal/config"
	"github.com/prefeitura-rio/app-painel-insights/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-insights/internal/typesense"
)

// New cria a fonte de dados selecionada por DATA_SOURCE
func New(cfg *config.Config) (dashboard.DataSource, error) {
	switch cfg.DataSource {
	case config.SourceHTTP:
		return NewHTTPSource(cfg.DataSourceURL, cfg.DataSourceTimeout()), nil
	case config.SourceTypesense:
		return NewTypesenseSource(typesense.NewClient(cfg)), nil
	case config.SourceFile:
		return NewFileSource(cfg.DataFile), nil
	}
	return nil, fmt.Errorf("fonte de dados desconhecida: %q", cfg.DataSource)
}
