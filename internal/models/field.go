package models

// Field identifica um dos nove campos filtráveis de um Record
type Field int

const (
	FieldEndYear Field = iota
	FieldTopic
	FieldSector
	FieldRegion
	FieldPestle
	FieldSource
	FieldSWOT
	FieldCountry
	FieldCity

	// FieldCount é o número de campos filtráveis; usado para dimensionar arrays indexados por Field
	FieldCount int = iota
)

var fieldKeys = [FieldCount]string{
	FieldEndYear: "end_year",
	FieldTopic:   "topic",
	FieldSector:  "sector",
	FieldRegion:  "region",
	FieldPestle:  "pestle",
	FieldSource:  "source",
	FieldSWOT:    "swot",
	FieldCountry: "country",
	FieldCity:    "city",
}

// aliases aceitos na borda (nomes usados pelo frontend original)
var fieldAliases = map[string]Field{
	"endYear": FieldEndYear,
}

// Fields retorna os campos filtráveis na ordem de exibição
func Fields() []Field {
	fields := make([]Field, FieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Key retorna a chave JSON do campo
func (f Field) Key() string {
	if !f.IsValid() {
		return ""
	}
	return fieldKeys[f]
}

// String implementa fmt.Stringer
func (f Field) String() string {
	return f.Key()
}

// IsValid verifica se o campo é um dos nove campos filtráveis
func (f Field) IsValid() bool {
	return f >= 0 && int(f) < FieldCount
}

// ParseField converte uma chave (ou alias) no Field correspondente
func ParseField(name string) (Field, bool) {
	for i, key := range fieldKeys {
		if key == name {
			return Field(i), true
		}
	}
	if f, ok := fieldAliases[name]; ok {
		return f, true
	}
	return 0, false
}
