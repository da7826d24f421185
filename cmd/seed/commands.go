package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-painel-insights/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-insights/internal/datasource"
	"github.com/prefeitura-rio/app-painel-insights/internal/migration/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importFile string
	importURL  string
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Cria a collection de registros se ela não existir",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		def := schemas.InsightsV1()
		created, err := client.EnsureCollection(ctx, def)
		if err != nil {
			return err
		}

		result := map[string]interface{}{
			"collection": client.Collection(),
			"version":    def.Version,
			"created":    created,
			"fields":     def.FieldNames(),
		}
		if jsonOutput {
			return printJSON(result)
		}
		if created {
			fmt.Printf("✅ Collection %s criada (schema %s)\n", client.Collection(), def.Version)
		} else {
			fmt.Printf("Collection %s já existe\n", client.Collection())
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Importa registros de um arquivo JSON (--file) ou de uma API de dados (--url)",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := importSource(importFile, importURL)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		records, err := source.GetData(ctx)
		if err != nil {
			return fmt.Errorf("erro ao ler registros (%s): %w", source.Name(), err)
		}

		if _, err := client.EnsureCollection(ctx, schemas.InsightsV1()); err != nil {
			return err
		}

		start := time.Now()
		result, err := client.ImportRecords(ctx, records)
		if err != nil {
			return err
		}
		logger.Info("importação concluída",
			zap.String("collection", client.Collection()),
			zap.String("source", source.Name()),
			zap.Int("imported", result.Imported),
			zap.Int("failed", result.Failed),
			zap.Duration("duration", time.Since(start)),
		)

		if jsonOutput {
			return printJSON(result)
		}
		fmt.Printf("Importados: %d\nFalhas: %d\n", result.Imported, result.Failed)
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
		if result.Failed > 0 {
			return fmt.Errorf("%d registros não foram importados", result.Failed)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Mostra a saúde do Typesense e o número de documentos da collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := client.Health(ctx); err != nil {
			return fmt.Errorf("typesense indisponível em %s: %w", cfg.TypesenseURL(), err)
		}
		count, err := client.CountDocuments(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"server":     cfg.TypesenseURL(),
				"collection": client.Collection(),
				"documents":  count,
			})
		}
		fmt.Printf("Servidor: %s\nCollection: %s\nDocumentos: %d\n", cfg.TypesenseURL(), client.Collection(), count)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "Arquivo JSON com o array de registros")
	importCmd.Flags().StringVar(&importURL, "url", "", "Endpoint que retorna o array de registros")
}

// importSource escolhe a origem da importação; exatamente uma das opções deve ser informada
func importSource(file, url string) (dashboard.DataSource, error) {
	switch {
	case file != "" && url != "":
		return nil, fmt.Errorf("informe apenas uma das opções --file ou --url")
	case file != "":
		return datasource.NewFileSource(file), nil
	case url != "":
		return datasource.NewHTTPSource(url, cfgTimeout()), nil
	}
	return nil, fmt.Errorf("informe --file ou --url")
}

func cfgTimeout() time.Duration {
	if cfg == nil {
		return 30 * time.Second
	}
	return cfg.DataSourceTimeout()
}
