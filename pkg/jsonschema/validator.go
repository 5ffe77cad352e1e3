package jsonschema

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors represents a collection of validation errors
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Schema is a compiled JSON Schema
type Schema struct {
	schema *jsonschema.Schema
}

// Compile compiles schemaStr under the given resource name
func Compile(name, schemaStr string) (*Schema, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(name, strings.NewReader(schemaStr)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return &Schema{schema: schema}, nil
}

// MustCompile is like Compile but panics if the schema is invalid
func MustCompile(name, schemaStr string) *Schema {
	s, err := Compile(name, schemaStr)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks a decoded JSON document (as produced by encoding/json)
// against the schema. It returns nil when the document is valid.
func (s *Schema) Validate(doc interface{}) ValidationErrors {
	err := s.schema.Validate(doc)
	if err == nil {
		return nil
	}

	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		return extractValidationErrors(validationErr)
	}
	return ValidationErrors{err}
}

// extractValidationErrors flattens a jsonschema.ValidationError tree,
// keeping only the leaf causes
func extractValidationErrors(err *jsonschema.ValidationError) ValidationErrors {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return ValidationErrors{fmt.Errorf("%s: %s", location, err.Message)}
	}

	var errors ValidationErrors
	for _, childErr := range err.Causes {
		errors = append(errors, extractValidationErrors(childErr)...)
	}
	return errors
}
