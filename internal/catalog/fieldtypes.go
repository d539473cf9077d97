package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownFieldType indicates a logical field type with no entry in
// the translation table. Unknown types are an error, never a silent
// passthrough.
var ErrUnknownFieldType = errors.New("catalog: unknown field type")

// TypePair is the translation of one logical field type into the tokens
// used by the generated code: the SQLAlchemy column type and the
// Pydantic annotation.
type TypePair struct {
	Column string // e.g. "String", "Integer"
	Schema string // e.g. "str", "int"

	// SchemaImport is a non-builtin import the Pydantic annotation
	// needs, as "module:name" (e.g. "datetime:datetime"). Empty for
	// builtins.
	SchemaImport string
}

func newTypeMap() map[string]TypePair {
	return map[string]TypePair{
		"str":      {Column: "String", Schema: "str"},
		"string":   {Column: "String", Schema: "str"},
		"int":      {Column: "Integer", Schema: "int"},
		"integer":  {Column: "Integer", Schema: "int"},
		"float":    {Column: "Float", Schema: "float"},
		"bool":     {Column: "Boolean", Schema: "bool"},
		"boolean":  {Column: "Boolean", Schema: "bool"},
		"text":     {Column: "Text", Schema: "str"},
		"date":     {Column: "Date", Schema: "date", SchemaImport: "datetime:date"},
		"datetime": {Column: "DateTime", Schema: "datetime", SchemaImport: "datetime:datetime"},
		"uuid":     {Column: "Uuid", Schema: "UUID", SchemaImport: "uuid:UUID"},
	}
}

// FieldType translates a logical field type, case-insensitively.
func (c *Catalog) FieldType(logical string) (TypePair, error) {
	pair, ok := c.typeMap[strings.ToLower(logical)]
	if !ok {
		return TypePair{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, logical)
	}
	return pair, nil
}

// FieldTypes returns the sorted logical type names the table supports.
func (c *Catalog) FieldTypes() []string {
	names := make([]string, 0, len(c.typeMap))
	for name := range c.typeMap {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
