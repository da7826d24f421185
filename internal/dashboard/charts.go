package dashboard

import (
	"github.com/prefeitura-rio/app-painel-insights/internal/models"
	"github.com/prefeitura-rio/app-painel-insights/internal/utils"
)

// Paleta original das séries intensity, likelihood e relevance
var seriesColors = map[string]string{
	"intensity":  "#8884d8",
	"likelihood": "#82ca9d",
	"relevance":  "#ffc658",
}

var measureOrder = []string{"intensity", "likelihood", "relevance"}

// ChartSet agrupa as séries entregues ao renderizador de gráficos
type ChartSet struct {
	Bar  *ChartConfig `json:"bar"`
	Line *ChartConfig `json:"line"`
	Pie  *ChartConfig `json:"pie"`
}

// ChartConfig descreve um gráfico sem nenhuma decisão de estilo além das cores das séries
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries representa uma série de dados
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint é um ponto da série; Color só é usado no gráfico de pizza
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// TitleFact é o título de um registro extremo.
// Title é o valor do registro sem alteração; DisplayTitle é a versão sem marcação markdown.
type TitleFact struct {
	Title        string  `json:"title"`
	DisplayTitle string  `json:"display_title"`
	Intensity    float64 `json:"intensity"`
}

// Summary contém os fatos textuais do painel; campos nil devem ser omitidos na exibição
type Summary struct {
	TopIntensity   *TitleFact `json:"top_intensity,omitempty"`
	LeastIntensity *TitleFact `json:"least_intensity,omitempty"`
}

// BuildSummary converte os extremos em fatos de título
func BuildSummary(extremes models.Extremes) Summary {
	return Summary{
		TopIntensity:   titleFact(extremes.Max),
		LeastIntensity: titleFact(extremes.Min),
	}
}

func titleFact(r *models.Record) *TitleFact {
	if r == nil {
		return nil
	}
	return &TitleFact{
		Title:        r.Title,
		DisplayTitle: utils.PlainText(r.Title),
		Intensity:    r.Intensity.ValueOrZero(),
	}
}

// BuildCharts monta as séries de barra (por país), linha (por ano) e pizza (intensidade por país)
func BuildCharts(records []models.Record) ChartSet {
	return ChartSet{
		Bar: &ChartConfig{
			ChartType:  "bar",
			Title:      "Data Overview",
			XAxis:      models.FieldCountry.Key(),
			Series:     measureSeries(records, func(r *models.Record) string { return string(r.Country) }),
			ShowLegend: true,
			ShowGrid:   true,
		},
		Line: &ChartConfig{
			ChartType:  "line",
			Title:      "Data Overview",
			XAxis:      "year",
			Series:     measureSeries(records, func(r *models.Record) string { return string(r.Year) }),
			ShowLegend: true,
			ShowGrid:   true,
		},
		Pie: buildPie(records),
	}
}

func measureSeries(records []models.Record, label func(*models.Record) string) []ChartSeries {
	series := make([]ChartSeries, 0, len(measureOrder))
	for _, measure := range measureOrder {
		points := make([]ChartPoint, 0, len(records))
		for i := range records {
			points = append(points, ChartPoint{
				Label: label(&records[i]),
				Value: measureValue(&records[i], measure),
			})
		}
		series = append(series, ChartSeries{
			Name:  measure,
			Data:  points,
			Color: seriesColors[measure],
		})
	}
	return series
}

func buildPie(records []models.Record) *ChartConfig {
	points := make([]ChartPoint, 0, len(records))
	for i := range records {
		color := records[i].Color
		if color == "" {
			color = seriesColors["intensity"]
		}
		points = append(points, ChartPoint{
			Label: string(records[i].Country),
			Value: records[i].Intensity.ValueOrZero(),
			Color: color,
		})
	}
	return &ChartConfig{
		ChartType:  "pie",
		Title:      "Detailed View",
		Series:     []ChartSeries{{Name: "intensity", Data: points}},
		ShowLegend: false,
		ShowGrid:   false,
	}
}

func measureValue(r *models.Record, measure string) float64 {
	switch measure {
	case "intensity":
		return r.Intensity.ValueOrZero()
	case "likelihood":
		return r.Likelihood.ValueOrZero()
	case "relevance":
		return r.Relevance.ValueOrZero()
	}
	return 0
}
