package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/prefeitura-rio/app-painel-insights/internal/dashboard"
	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"github.com/prefeitura-rio/app-painel-insights/internal/utils"
	"gopkg.in/yaml.v3"
)

type facetReport struct {
	Field    string   `json:"field" yaml:"field"`
	Label    string   `json:"label" yaml:"label"`
	Selected string   `json:"selected,omitempty" yaml:"selected,omitempty"`
	Count    int      `json:"count" yaml:"count"`
	Options  []string `json:"options" yaml:"options"`
}

type extremeReport struct {
	Title     string  `json:"title" yaml:"title"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
	Country   string  `json:"country,omitempty" yaml:"country,omitempty"`
}

type report struct {
	Source  string         `json:"source" yaml:"source"`
	Total   int            `json:"total" yaml:"total"`
	Matched int            `json:"matched" yaml:"matched"`
	Facets  []facetReport  `json:"facets" yaml:"facets"`
	Max     *extremeReport `json:"max_intensity,omitempty" yaml:"max_intensity,omitempty"`
	Min     *extremeReport `json:"min_intensity,omitempty" yaml:"min_intensity,omitempty"`
}

func buildReport(session *dashboard.Session, source string, maxOptions int) report {
	sel := session.Selection()
	index := session.Facets()

	facets := make([]facetReport, 0, models.FieldCount)
	for _, f := range models.Fields() {
		options := index.Values(f)
		count := len(options)
		if maxOptions > 0 && len(options) > maxOptions {
			options = options[:maxOptions]
		}
		facets = append(facets, facetReport{
			Field:    f.Key(),
			Label:    utils.FieldLabel(f.Key()),
			Selected: sel.Get(f),
			Count:    count,
			Options:  options,
		})
	}

	extremes := session.Extremes()
	return report{
		Source:  source,
		Total:   len(session.Records()),
		Matched: len(session.Filtered()),
		Facets:  facets,
		Max:     extremeOf(extremes.Max),
		Min:     extremeOf(extremes.Min),
	}
}

func extremeOf(r *models.Record) *extremeReport {
	if r == nil {
		return nil
	}
	return &extremeReport{
		Title:     r.Title,
		Intensity: r.Intensity.ValueOrZero(),
		Country:   string(r.Country),
	}
}

func render(w io.Writer, rep report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(rep)
	case "table", "":
		return renderTable(w, rep)
	}
	return fmt.Errorf("formato de saída desconhecido: %q", format)
}

func renderTable(w io.Writer, rep report) error {
	fmt.Fprintf(w, "Fonte: %s\nRegistros: %d de %d\n\n", rep.Source, rep.Matched, rep.Total)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILTRO\tSELECIONADO\tVALORES\tOPÇÕES")
	for _, f := range rep.Facets {
		selected := f.Selected
		if selected == "" {
			selected = "-"
		}
		options := quoteAll(f.Options)
		if len(f.Options) < f.Count {
			options += fmt.Sprintf(", ... (+%d)", f.Count-len(f.Options))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", f.Label, selected, f.Count, options)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if rep.Max != nil {
		fmt.Fprintf(w, "Top Intensity: %s (%g)\n", rep.Max.Title, rep.Max.Intensity)
	}
	if rep.Min != nil {
		fmt.Fprintf(w, "Least Intensity: %s (%g)\n", rep.Min.Title, rep.Min.Intensity)
	}
	return nil
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
