package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects Config into a JSON schema document.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Every key has a default, so nothing is required in the file.
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/servicestudio/shell/config.schema.json"
	schema.Title = "ServiceStudio Shell Configuration"
	schema.Description = "Drag-and-drop, ghost preview, and layout settings of the ServiceStudio shell"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to config.toml in dir.
func GenerateSchemaFile(dir string) error {
	data, err := GenerateSchema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, schemaName), data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
