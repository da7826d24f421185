package models

// Record representa uma linha do dataset de insights
type Record struct {
	ID string `json:"_id,omitempty" typesense:"id,optional"`

	// Campos categóricos filtráveis
	EndYear Text `json:"end_year" typesense:"end_year"`
	Topic   Text `json:"topic" typesense:"topic"`
	Sector  Text `json:"sector" typesense:"sector"`
	Region  Text `json:"region" typesense:"region"`
	Pestle  Text `json:"pestle" typesense:"pestle"`
	Source  Text `json:"source" typesense:"source"`
	SWOT    Text `json:"swot" typesense:"swot"`
	Country Text `json:"country" typesense:"country"`
	City    Text `json:"city" typesense:"city"`

	// Medidas
	Intensity  NullFloat `json:"intensity" typesense:"intensity,optional"`
	Likelihood NullFloat `json:"likelihood" typesense:"likelihood,optional"`
	Relevance  NullFloat `json:"relevance" typesense:"relevance,optional"`

	Year  Text   `json:"year" typesense:"year"`
	Title string `json:"title" typesense:"title"`
	Color string `json:"color,omitempty" typesense:"color,optional"`
}

// Value retorna o valor do campo filtrável f ("" para campo inválido)
func (r *Record) Value(f Field) string {
	switch f {
	case FieldEndYear:
		return string(r.EndYear)
	case FieldTopic:
		return string(r.Topic)
	case FieldSector:
		return string(r.Sector)
	case FieldRegion:
		return string(r.Region)
	case FieldPestle:
		return string(r.Pestle)
	case FieldSource:
		return string(r.Source)
	case FieldSWOT:
		return string(r.SWOT)
	case FieldCountry:
		return string(r.Country)
	case FieldCity:
		return string(r.City)
	}
	return ""
}
