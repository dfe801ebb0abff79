package signal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/bluescout/internal/schema"
)

// LoadFile reads a custom dictionary set from a YAML file. The raw document
// is validated against the embedded CUE schema before it is unmarshaled, so a
// malformed file is rejected at startup rather than silently mis-scoring.
func LoadFile(path string) (*Dictionaries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dictionary file: %w", err)
	}

	validator := schema.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("error loading dictionary schema: %w", err)
	}
	if issues, err := validator.ValidateDictionary(data); err != nil {
		return nil, fmt.Errorf("error validating dictionary file: %w", err)
	} else if len(issues) > 0 {
		return nil, fmt.Errorf("invalid dictionary file %s: %s", path, issues[0].Message)
	}

	var dicts Dictionaries
	if err := yaml.Unmarshal(data, &dicts); err != nil {
		return nil, fmt.Errorf("error parsing dictionary file: %w", err)
	}

	if err := dicts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dictionary file %s: %w", path, err)
	}

	return &dicts, nil
}
