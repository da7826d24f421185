package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prefeitura-rio/app-painel-insights/internal/config"
	"github.com/prefeitura-rio/app-painel-insights/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-insights/internal/datasource"
	"github.com/spf13/cobra"
)

var (
	filters    []string
	dataFile   string
	outputFmt  string
	maxOptions int
)

var rootCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explora o dataset do painel pelo terminal",
	Long: `explore carrega o dataset da fonte configurada (ou de --file), aplica os filtros
informados em sequência e mostra as facetas, o número de registros filtrados e os
registros de maior e menor intensidade.

Exemplo:
  explore --file data/jsondata.json --filter country="United States of America" --filter sector=Energy`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := resolveSource(dataFile)
		if err != nil {
			return err
		}

		session := dashboard.NewSession()
		if err := session.Load(cmd.Context(), source); err != nil {
			return err
		}
		if err := applyFilters(session, filters); err != nil {
			return err
		}

		report := buildReport(session, source.Name(), maxOptions)
		return render(cmd.OutOrStdout(), report, outputFmt)
	},
}

func init() {
	rootCmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "Filtro campo=valor (repetível; valor vazio limpa o filtro)")
	rootCmd.Flags().StringVar(&dataFile, "file", "", "Lê os registros deste arquivo JSON em vez da fonte configurada")
	rootCmd.Flags().StringVarP(&outputFmt, "output", "o", "table", "Formato de saída: table, json ou yaml")
	rootCmd.Flags().IntVar(&maxOptions, "max-options", 10, "Máximo de opções exibidas por faceta na tabela (0 = todas)")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}

func resolveSource(file string) (dashboard.DataSource, error) {
	if file != "" {
		return datasource.NewFileSource(file), nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return datasource.New(cfg)
}

// applyFilters aplica cada filtro "campo=valor" na ordem em que foi informado
func applyFilters(session *dashboard.Session, filters []string) error {
	for _, raw := range filters {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("filtro inválido %q: use campo=valor", raw)
		}
		if err := session.SelectByName(strings.TrimSpace(name), value); err != nil {
			return err
		}
	}
	return nil
}
