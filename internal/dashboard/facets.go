package dashboard

import "github.com/prefeitura-rio/app-painel-insights/internal/models"

// BuildFacetIndex calcula, para cada campo filtrável, os valores distintos em ordem de primeira ocorrência.
// Para end_year valores falsos ("", "0" ou "false") são descartados; os demais campos mantêm "" se presente.
func BuildFacetIndex(records []models.Record) models.FacetIndex {
	var index models.FacetIndex
	seen := make([]map[string]struct{}, models.FieldCount)

	for _, f := range models.Fields() {
		index[f] = []string{}
		seen[f] = make(map[string]struct{})
	}

	for i := range records {
		for _, f := range models.Fields() {
			value := records[i].Value(f)
			if f == models.FieldEndYear && isFalsy(value) {
				continue
			}
			if _, ok := seen[f][value]; ok {
				continue
			}
			seen[f][value] = struct{}{}
			index[f] = append(index[f], value)
		}
	}

	return index
}

func isFalsy(value string) bool {
	return value == "" || value == "0" || value == "false"
}
