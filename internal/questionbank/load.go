package questionbank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML layout of a question catalog.
type catalogFile struct {
	Questions []Question `yaml:"questions"`
}

// Parse decodes a YAML catalog, checks it against the catalog schema and
// builds a Bank from it.
func Parse(data []byte) (*Bank, error) {
	// The schema validator works on generic values, so decode twice:
	// once loosely for the schema and once into typed questions.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}
	inst, err := toJSONValue(doc)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(file.Questions)
}

// Load reads and parses the YAML catalog at path.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	bank, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}
