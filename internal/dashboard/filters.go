package dashboard

import (
	"fmt"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
)

// ApplyFilters retorna os registros que satisfazem todos os filtros definidos (AND entre campos).
// Sem filtros definidos retorna o próprio slice de entrada.
func ApplyFilters(records []models.Record, sel models.Selection) []models.Record {
	active := sel.Active()
	if len(active) == 0 {
		return records
	}

	filtered := make([]models.Record, 0, len(records))
	for i := range records {
		if matches(&records[i], sel, active) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}

func matches(r *models.Record, sel models.Selection, active []models.Field) bool {
	for _, f := range active {
		if r.Value(f) != sel[f] {
			return false
		}
	}
	return true
}

// UpdateSelection retorna uma cópia de sel com o campo f definido para value ("" limpa o filtro)
func UpdateSelection(sel models.Selection, f models.Field, value string) models.Selection {
	if !f.IsValid() {
		return sel
	}
	next := sel
	next[f] = value
	return next
}

// UpdateSelectionByName é a variante usada nas bordas (HTTP/CLI), onde o campo chega como string
func UpdateSelectionByName(sel models.Selection, name, value string) (models.Selection, error) {
	f, ok := models.ParseField(name)
	if !ok {
		return sel, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return UpdateSelection(sel, f, value), nil
}
