// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: Modo do gin: debug, release, test (default: release)
//   - CORS_ALLOWED_ORIGIN: Origem permitida pelo CORS (default: *)
//
// ## Fonte de dados
//   - DATA_SOURCE: Fonte do dataset: http, typesense, file (default: http)
//   - DATA_SOURCE_URL: Endpoint que retorna o array JSON de registros (default: http://localhost:5000/api/data)
//   - DATA_SOURCE_TIMEOUT_SECONDS: Timeout da requisição HTTP (default: 30)
//   - DATA_FILE: Arquivo JSON local usado pela fonte file (default: data/jsondata.json)
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//   - TYPESENSE_COLLECTION: Collection com os registros (default: insights)
//   - TYPESENSE_PAGE_SIZE: Documentos por página na leitura (default: 250)
//
// ## Cache de visões
//   - VIEW_CACHE_TTL_MINUTES: TTL das visões calculadas (default: 5)
//   - VIEW_CACHE_MAX_SIZE: Número máximo de visões em cache (default: 500)
//
// ## Observabilidade
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json ou console (default: json)
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor OTLP (default: localhost:4317)
//   - METRICS_ENABLED: Expõe /metrics para Prometheus (default: true)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Fontes de dados suportadas
const (
	SourceHTTP      = "http"
	SourceTypesense = "typesense"
	SourceFile      = "file"
)

type Config struct {
	ServerPort        string `validate:"required,numeric"`
	GinMode           string `validate:"oneof=debug release test"`
	CORSAllowedOrigin string `validate:"required"`

	DataSource               string `validate:"oneof=http typesense file"`
	DataSourceURL            string `validate:"required_if=DataSource http,omitempty,url"`
	DataSourceTimeoutSeconds int    `validate:"min=1"`
	DataFile                 string `validate:"required_if=DataSource file"`

	TypesenseHost       string `validate:"required_if=DataSource typesense"`
	TypesensePort       string `validate:"omitempty,numeric"`
	TypesenseAPIKey     string
	TypesenseProtocol   string `validate:"oneof=http https"`
	TypesenseCollection string `validate:"required_if=DataSource typesense"`
	TypesensePageSize   int    `validate:"min=1,max=250"`

	ViewCacheTTLMinutes int `validate:"min=0"`
	ViewCacheMaxSize    int `validate:"min=0"`

	// Logging configuration
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	// Metrics configuration
	MetricsEnabled bool
}

// LoadConfig lê o .env (se existir) e as variáveis de ambiente, aplicando defaults
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "release"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),

		DataSource:               strings.ToLower(getEnv("DATA_SOURCE", SourceHTTP)),
		DataSourceURL:            getEnv("DATA_SOURCE_URL", "http://localhost:5000/api/data"),
		DataSourceTimeoutSeconds: getEnvInt("DATA_SOURCE_TIMEOUT_SECONDS", 30),
		DataFile:                 getEnv("DATA_FILE", "data/jsondata.json"),

		TypesenseHost:       getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:       getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:     getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol:   getEnv("TYPESENSE_PROTOCOL", "http"),
		TypesenseCollection: getEnv("TYPESENSE_COLLECTION", "insights"),
		TypesensePageSize:   getEnvInt("TYPESENSE_PAGE_SIZE", 250),

		ViewCacheTTLMinutes: getEnvInt("VIEW_CACHE_TTL_MINUTES", 5),
		ViewCacheMaxSize:    getEnvInt("VIEW_CACHE_MAX_SIZE", 500),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica a consistência da configuração
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: regra '%s' violada (valor %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
			}
			return fmt.Errorf("configuração inválida: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("configuração inválida: %w", err)
	}
	return nil
}

// TypesenseURL monta a URL base do servidor Typesense
func (c *Config) TypesenseURL() string {
	return fmt.Sprintf("%s://%s:%s", c.TypesenseProtocol, c.TypesenseHost, c.TypesensePort)
}

// DataSourceTimeout retorna o timeout da fonte HTTP
func (c *Config) DataSourceTimeout() time.Duration {
	return time.Duration(c.DataSourceTimeoutSeconds) * time.Second
}

// ViewCacheTTL retorna o TTL do cache de visões
func (c *Config) ViewCacheTTL() time.Duration {
	return time.Duration(c.ViewCacheTTLMinutes) * time.Minute
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
