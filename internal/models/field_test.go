package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields_Order(t *testing.T) {
	keys := make([]string, 0, FieldCount)
	for _, f := range Fields() {
		keys = append(keys, f.Key())
	}

	assert.Equal(t, []string{
		"end_year", "topic", "sector", "region", "pestle", "source", "swot", "country", "city",
	}, keys)
}

func TestParseField(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Field
		wantOK bool
	}{
		{name: "chave", input: "country", want: FieldCountry, wantOK: true},
		{name: "cidade", input: "city", want: FieldCity, wantOK: true},
		{name: "alias do frontend", input: "endYear", want: FieldEndYear, wantOK: true},
		{name: "chave canônica de end_year", input: "end_year", want: FieldEndYear, wantOK: true},
		{name: "plural inválido", input: "countrys", wantOK: false},
		{name: "medida não é filtro", input: "intensity", wantOK: false},
		{name: "vazio", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseField(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestField_IsValid(t *testing.T) {
	assert.True(t, FieldEndYear.IsValid())
	assert.True(t, FieldCity.IsValid())
	assert.False(t, Field(-1).IsValid())
	assert.False(t, Field(FieldCount).IsValid())
	assert.Equal(t, "", Field(FieldCount).Key())
	assert.Equal(t, "swot", FieldSWOT.String())
}

func TestRecord_Value(t *testing.T) {
	r := Record{
		EndYear: "2030", Topic: "oil", Sector: "Energy", Region: "Asia", Pestle: "Economic",
		Source: "EIA", SWOT: "Threat", Country: "India", City: "Delhi",
	}

	want := []string{"2030", "oil", "Energy", "Asia", "Economic", "EIA", "Threat", "India", "Delhi"}
	for i, f := range Fields() {
		assert.Equal(t, want[i], r.Value(f), f.Key())
	}
	assert.Equal(t, "", r.Value(Field(FieldCount)))
}
