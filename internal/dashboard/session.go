package dashboard

import (
	"context"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
)

// Session mantém o estado de uma sessão de exploração: dataset, seleção e visão derivada.
// O índice de facetas é recalculado apenas quando o dataset muda; a visão filtrada e os
// extremos apenas quando o dataset ou a seleção mudam.
// Não é seguro para uso concorrente: as ações do usuário são serializadas pelo chamador.
type Session struct {
	dataset   *Dataset
	selection models.Selection

	dirty    bool
	filtered []models.Record
	extremes models.Extremes
}

// NewSession cria uma sessão vazia com todos os filtros limpos
func NewSession() *Session {
	return &Session{
		dataset: EmptyDataset(),
		dirty:   true,
	}
}

// Load busca os dados na fonte e instala o novo dataset.
// Em caso de falha o estado anterior é preservado.
func (s *Session) Load(ctx context.Context, source DataSource) error {
	ds, err := fetch(ctx, source)
	if err != nil {
		return err
	}
	s.Install(ds)
	return nil
}

// Install troca o dataset da sessão
func (s *Session) Install(ds *Dataset) {
	if ds == nil {
		ds = EmptyDataset()
	}
	s.dataset = ds
	s.dirty = true
}

// Select altera um único filtro; a visão só é invalidada se o valor mudou
func (s *Session) Select(f models.Field, value string) {
	s.apply(UpdateSelection(s.selection, f, value))
}

// SelectByName altera um filtro a partir do nome do campo
func (s *Session) SelectByName(name, value string) error {
	next, err := UpdateSelectionByName(s.selection, name, value)
	if err != nil {
		return err
	}
	s.apply(next)
	return nil
}

func (s *Session) apply(next models.Selection) {
	if next == s.selection {
		return
	}
	s.selection = next
	s.dirty = true
}

// Reset limpa todos os filtros
func (s *Session) Reset() {
	s.apply(models.Selection{})
}

// Dataset retorna o dataset instalado
func (s *Session) Dataset() *Dataset {
	return s.dataset
}

// Records retorna o dataset completo
func (s *Session) Records() []models.Record {
	return s.dataset.Records
}

// Facets retorna o índice de facetas do dataset atual
func (s *Session) Facets() models.FacetIndex {
	return s.dataset.Facets
}

// Selection retorna uma cópia da seleção atual
func (s *Session) Selection() models.Selection {
	return s.selection
}

// Filtered retorna os registros filtrados, recalculando se necessário
func (s *Session) Filtered() []models.Record {
	s.refresh()
	return s.filtered
}

// Extremes retorna os registros de maior e menor intensidade da visão filtrada
func (s *Session) Extremes() models.Extremes {
	s.refresh()
	return s.extremes
}

func (s *Session) refresh() {
	if !s.dirty {
		return
	}
	s.filtered = ApplyFilters(s.dataset.Records, s.selection)
	s.extremes = DeriveExtremes(s.filtered)
	s.dirty = false
}
