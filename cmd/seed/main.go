package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prefeitura-rio/app-painel-insights/internal/config"
	"github.com/prefeitura-rio/app-painel-insights/internal/observability"
	"github.com/prefeitura-rio/app-painel-insights/internal/typesense"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	jsonOutput bool

	cfg    *config.Config
	logger *zap.Logger
	client *typesense.Client
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Prepara a collection Typesense usada como fonte do painel",
	Long: `seed cria a collection de registros do painel no Typesense, importa registros
a partir de um arquivo JSON ou de uma API de dados e mostra o estado da collection.
A conexão é configurada pelas mesmas variáveis TYPESENSE_* da API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		logger, err = observability.NewLogger(cfg)
		if err != nil {
			return err
		}
		client = typesense.NewClient(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Saída em formato JSON")
	rootCmd.AddCommand(schemaCmd, importCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
