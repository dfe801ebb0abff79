// Package schema validates custom dictionary files against embedded CUE
// schemas before they are allowed to replace the built-in signal set.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Issue represents a single schema validation failure.
type Issue struct {
	Message  string
	Severity string
}

// Validator handles CUE validation.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas loads all CUE schema files from the embedded filesystem.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("invalid embedded schema %s: %w", entry.Name(), instErr)
		}

		schemaName := entry.Name()[:len(entry.Name())-4]
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}

	return nil
}

// ValidateDictionary validates a raw YAML dictionary document against the
// #Dictionary definition.
func (v *Validator) ValidateDictionary(raw []byte) ([]Issue, error) {
	schema, ok := v.schemas["dictionary"]
	if !ok {
		return nil, fmt.Errorf("dictionary schema not loaded")
	}

	var data map[string]any
	if err := yamlv3.Unmarshal(raw, &data); err != nil {
		return []Issue{{
			Message:  fmt.Sprintf("not valid YAML: %v", err),
			Severity: "error",
		}}, nil
	}

	return v.validateAgainstSchema(schema, data, "Dictionary")
}

// validateAgainstSchema unifies data with the named definition and reports
// any conflicts as issues.
func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, defName string) ([]Issue, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath("#" + defName))
	if !def.Exists() {
		return nil, fmt.Errorf("schema definition #%s not found", defName)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return issuesFromCUE(err), nil
	}

	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return issuesFromCUE(err), nil
	}

	return nil, nil
}

func issuesFromCUE(err error) []Issue {
	return []Issue{{
		Message:  fmt.Sprintf("schema validation failed: %v", err),
		Severity: "error",
	}}
}
