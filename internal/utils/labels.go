package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldLabel converte a chave de um campo em rótulo de exibição
// Exemplo: "end_year" -> "End Year", "swot" -> "Swot"
func FieldLabel(key string) string {
	if key == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
