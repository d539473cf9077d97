package metadata

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the structural contract for the metadata file.
// Deliberately permissive: unknown properties are allowed so documents
// written by newer minor versions still load, and only the identity
// fields are required so older documents pick up defaults for the rest.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema_version", "name", "project_type", "frontend_type"],
  "properties": {
    "schema_version": {"type": "string"},
    "generator_version": {"type": "string"},
    "created_at": {"type": "string"},
    "name": {"type": "string", "minLength": 1},
    "project_type": {"type": "string"},
    "frontend_type": {"type": "string"},
    "description": {"type": "string"},
    "db_name": {"type": "string"},
    "db_user": {"type": "string"},
    "db_password": {"type": "string"},
    "include_auth": {"type": "boolean"},
    "include_alembic": {"type": "boolean"},
    "include_sse": {"type": "boolean"},
    "include_redis": {"type": "boolean"},
    "api_port": {"type": "integer"},
    "frontend_port": {"type": "integer"},
    "use_current_dir": {"type": "boolean"}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// loadSchema compiles the embedded schema once per process.
func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(documentSchema)))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshal metadata schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("scaffold.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add metadata schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("scaffold.schema.json")
	})
	return compiledSchema, schemaErr
}

// validateSchema checks raw metadata bytes against the document schema.
func validateSchema(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return err
	}
	return nil
}
