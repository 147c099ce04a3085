package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema reflects a JSON Schema for RealmsConfig.
// YAML is a superset of JSON, so editors can validate realms.yaml against it.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(new(RealmsConfig))
	schema.Title = "Tree of Realms configuration"
	schema.Description = "Validates realms.yaml overrides loaded by 'realms play --config'"
	return schema
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
