package config

import (
	"fmt"
	"strings"
)

// ValidationError represents an invalid option value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid value for '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid options: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the resolved options.
//
// Returns nil if valid, or a *ValidationErrors with every problem found.
func (o *Options) Validate() error {
	errs := &ValidationErrors{}

	if o.FileSize < 0 {
		errs.Add("file-size", fmt.Sprintf("must not be negative, got %d", o.FileSize))
	}
	if o.NumSamples < 0 {
		errs.Add("num-samples", fmt.Sprintf("must not be negative, got %d", o.NumSamples))
	}
	if strings.TrimSpace(o.Dir) == "" {
		errs.Add("dir", "working directory is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
