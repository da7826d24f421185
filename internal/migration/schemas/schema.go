package schemas

import (
	"github.com/typesense/typesense-go/v3/typesense/api"
)

// SchemaDefinition define o schema de uma collection Typesense
type SchemaDefinition struct {
	Version      string
	Fields       []api.Field
	SortingField string
	NestedFields bool
}

// ToCollectionSchema monta o schema de criação para a collection informada
func (s *SchemaDefinition) ToCollectionSchema(name string) *api.CollectionSchema {
	schema := &api.CollectionSchema{
		Name:   name,
		Fields: s.Fields,
	}
	if s.SortingField != "" {
		schema.DefaultSortingField = StringPtr(s.SortingField)
	}
	if s.NestedFields {
		schema.EnableNestedFields = BoolPtr(true)
	}
	return schema
}

// FieldNames retorna os nomes dos campos na ordem do schema
func (s *SchemaDefinition) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Helper functions para criação de schemas

// StringPtr retorna um ponteiro para string
func StringPtr(s string) *string {
	return &s
}

// BoolPtr retorna um ponteiro para bool
func BoolPtr(b bool) *bool {
	return &b
}
