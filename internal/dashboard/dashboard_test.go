package dashboard

import (
	"context"
	"errors"

	"github.com/prefeitura-rio/app-painel-insights/internal/models"
)

func record(country, sector string, intensity float64, title string) models.Record {
	return models.Record{
		Country:   models.Text(country),
		Sector:    models.Text(sector),
		Intensity: models.Float(intensity),
		Title:     title,
	}
}

// scenarioRecords: dois USA (um Energy), um India e um UK
func scenarioRecords() []models.Record {
	return []models.Record{
		record("USA", "Energy", 6, "us-energy"),
		record("USA", "Retail", 2, "us-retail"),
		record("India", "Energy", 9, "india"),
		record("UK", "Government", 1, "uk"),
	}
}

type stubSource struct {
	name    string
	records []models.Record
	err     error
	calls   int
}

func (s *stubSource) Name() string {
	if s.name == "" {
		return "stub"
	}
	return s.name
}

func (s *stubSource) GetData(ctx context.Context) ([]models.Record, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

var errUnavailable = errors.New("connection refused")

func titles(records []models.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}
