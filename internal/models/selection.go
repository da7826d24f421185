package models

import (
	"encoding/json"
	"fmt"
)

// Selection é a escolha atual de filtros: um valor exato por campo, "" significa não definido.
// Por ser um array, atribuir uma Selection copia todos os campos.
type Selection [FieldCount]string

// Get retorna o valor selecionado para o campo
func (s Selection) Get(f Field) string {
	if !f.IsValid() {
		return ""
	}
	return s[f]
}

// IsEmpty verifica se nenhum filtro está definido
func (s Selection) IsEmpty() bool {
	for _, v := range s {
		if v != "" {
			return false
		}
	}
	return true
}

// Active retorna apenas os campos definidos, na ordem dos campos
func (s Selection) Active() []Field {
	var fields []Field
	for i, v := range s {
		if v != "" {
			fields = append(fields, Field(i))
		}
	}
	return fields
}

// MarshalJSON serializa apenas os filtros definidos, chaveados pelo nome do campo
func (s Selection) MarshalJSON() ([]byte, error) {
	out := make(map[string]string)
	for _, f := range s.Active() {
		out[f.Key()] = s[f]
	}
	return json.Marshal(out)
}

// UnmarshalJSON aceita o mesmo objeto produzido por MarshalJSON (aliases incluídos)
func (s *Selection) UnmarshalJSON(data []byte) error {
	var in map[string]string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var next Selection
	for name, value := range in {
		f, ok := ParseField(name)
		if !ok {
			return fmt.Errorf("campo de filtro desconhecido: %s", name)
		}
		next[f] = value
	}
	*s = next
	return nil
}

// FacetIndex guarda, por campo, os valores distintos em ordem de primeira ocorrência
type FacetIndex [FieldCount][]string

// Values retorna os valores distintos do campo
func (fi FacetIndex) Values(f Field) []string {
	if !f.IsValid() {
		return nil
	}
	return fi[f]
}

// Contains verifica se o valor existe no índice do campo
func (fi FacetIndex) Contains(f Field, value string) bool {
	for _, v := range fi.Values(f) {
		if v == value {
			return true
		}
	}
	return false
}

// MarshalJSON serializa como objeto chaveado pelo nome do campo; listas vazias viram []
func (fi FacetIndex) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, FieldCount)
	for _, f := range Fields() {
		values := fi[f]
		if values == nil {
			values = []string{}
		}
		out[f.Key()] = values
	}
	return json.Marshal(out)
}

// Extremes contém os registros de maior e menor intensidade (nil quando ausentes)
type Extremes struct {
	Max *Record `json:"max,omitempty"`
	Min *Record `json:"min,omitempty"`
}
