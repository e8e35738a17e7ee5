package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tasklist-go/internal/utils"
)

//go:embed config.schema.json
var configSchemaJSON []byte

const configSchemaURL = "https://github.com/nibzard/tasklist-go/config.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// ValidationError describes a config file that does not match the schema.
type ValidationError struct {
	Path    string // dotted path of the offending key, empty for the document
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Schema returns the JSON Schema config files are validated against.
func Schema() []byte {
	out := make([]byte, len(configSchemaJSON))
	copy(out, configSchemaJSON)
	return out
}

func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(configSchemaURL, bytes.NewReader(configSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(configSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile config schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateConfigData checks raw TOML against the config schema.
func validateConfigData(data []byte) error {
	var raw map[string]interface{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	// Round-trip through JSON so the validator only sees JSON types.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	schema, err := configSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError reduces a schema error to its first leaf cause.
func toValidationError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Message: err.Error()}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &ValidationError{
		Path:    utils.JSONPointerToPath(ve.InstanceLocation),
		Message: ve.Message,
	}
}
