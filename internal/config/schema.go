package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

// Schema returns the JSON Schema describing configuration files.
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

// SchemaError lists every place where a document disagrees with the schema.
type SchemaError struct {
	Errors []FieldError
}

// FieldError is a single schema violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for i, fieldErr := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fieldErr.Field, fieldErr.Message)
	}
	return sb.String()
}

// ValidateDocument checks raw configuration data against the embedded schema.
// YAML documents are decoded first so both formats share one schema.
func ValidateDocument(data []byte, format Format) error {
	var documentLoader gojsonschema.JSONLoader
	switch format {
	case FormatJSON:
		documentLoader = gojsonschema.NewBytesLoader(data)
	case FormatYAML:
		var doc any
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("invalid YAML: %w", err)
			}
			doc = map[string]any{}
		}
		documentLoader = gojsonschema.NewGoLoader(doc)
	default:
		return fmt.Errorf("%w: cannot validate unknown format", ErrUnsupportedFormat)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}
