package datasource

import (
	"context"
	"fmt"
	"os"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
)

// FileSource lê os registros de um arquivo JSON local (o mesmo formato do jsondata.json)
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file"
}

// Path retorna o caminho do arquivo
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) GetData(ctx context.Context) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir %s: %w", s.path, err)
	}
	defer f.Close()

	return decodeRecords(f)
}
