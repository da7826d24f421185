package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrDataSourceFailure = errors.New("falha ao carregar dados da fonte")
	ErrUnknownField      = errors.New("campo de filtro desconhecido")
	ErrDatasetNotLoaded  = errors.New("dataset ainda não carregado")

	errNoSource = fmt.Errorf("%w: nenhuma fonte configurada", ErrDataSourceFailure)
)

func wrapSourceError(source DataSource, err error) error {
	return fmt.Errorf("%w (%s): %v", ErrDataSourceFailure, source.Name(), err)
}
