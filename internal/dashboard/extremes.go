package dashboard

import "github.com/prefeitura-rio/app-painel-insights/internal/models"

// DeriveExtremes encontra os registros de maior e menor intensidade em uma única passada.
// Comparação estrita: em caso de empate vence a primeira ocorrência.
// Registros sem intensidade não participam.
func DeriveExtremes(records []models.Record) models.Extremes {
	var extremes models.Extremes

	for i := range records {
		r := &records[i]
		if !r.Intensity.Valid {
			continue
		}
		if extremes.Max == nil || r.Intensity.Float64 > extremes.Max.Intensity.Float64 {
			extremes.Max = r
		}
		if extremes.Min == nil || r.Intensity.Float64 < extremes.Min.Intensity.Float64 {
			extremes.Min = r
		}
	}

	return extremes
}
