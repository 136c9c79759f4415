package mapper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// tableSchema constrains mapping-table files to a flat object of node-type
// to capability-name strings.
const tableSchema = `{
	"type": "object",
	"additionalProperties": {"type": "string"}
}`

// LoadTable reads a mapping table from a YAML or JSON file. The decoded
// document is validated against tableSchema before use, so a malformed table
// fails loudly at load time instead of silently leaving nodes unmapped.
func LoadTable(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping table %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode mapping table %s: %w", path, err)
		}

		data, err = json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode mapping table %s: %w", path, err)
		}
	}

	return parseTable(data, path)
}

func parseTable(data []byte, path string) (map[string]string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(tableSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate mapping table %s: %w", path, err)
	}

	if !result.Valid() {
		return nil, fmt.Errorf("invalid mapping table %s: %s", path, result.Errors()[0].String())
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to decode mapping table %s: %w", path, err)
	}

	return table, nil
}
