package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/fslat/pkg/jsonpath"
)

// LoadFile loads options from a file, starting from Defaults.
//
// The file format is determined by extension:
//   - .json -> JSON
//   - .yaml, .yml, anything else -> YAML
//
// If profile is not empty it names the object inside the file that holds
// the options, e.g. "profiles.nvme".
func LoadFile(path, profile string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, path, profile)
}

// Parse decodes options from data. Fields absent from data keep their
// default values. The selected document is checked against the options
// schema before it is applied.
func Parse(data []byte, path, profile string) (*Options, error) {
	var doc interface{}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	opts := Defaults()
	if doc == nil && profile == "" {
		return opts, nil
	}

	// Round-trip through JSON so YAML and JSON documents are handled identically.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}

	if profile != "" {
		normalized, err = jsonpath.Select(normalized, profile)
		if err != nil {
			return nil, fmt.Errorf("invalid profile %q: %w", profile, err)
		}
	}

	var generic interface{}
	if err := json.Unmarshal(normalized, &generic); err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}

	if errs := schema.Validate(generic); errs != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, errs)
	}

	if err := json.Unmarshal(normalized, opts); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return opts, nil
}
