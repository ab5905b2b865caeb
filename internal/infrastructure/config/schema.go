package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "mapstructure"
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/drawerpane/config.schema.json"
	schema.Title = "Drawerpane Configuration"
	schema.Description = "Configuration schema for drawerpane, a dockable drawer container"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
