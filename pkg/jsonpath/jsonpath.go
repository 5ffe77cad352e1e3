package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Select returns the raw JSON of the object found at path inside doc.
//
// Paths may be written as JSONPath ($.profiles.nvme, $['profiles']['nvme'])
// or as gjson paths (profiles.nvme). The root path ($ or empty) selects doc
// itself.
func Select(doc []byte, path string) ([]byte, error) {
	if len(doc) == 0 {
		return nil, fmt.Errorf("empty JSON document")
	}
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("invalid JSON document")
	}

	result := gjson.GetBytes(doc, convertToGjsonPath(path))
	if !result.Exists() {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	if !result.IsObject() {
		return nil, fmt.Errorf("path %s is not an object (got %s)", path, typeName(result))
	}

	return []byte(result.Raw), nil
}

// typeName describes the JSON type of a gjson result
func typeName(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "array"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	case r.Type == gjson.Null:
		return "null"
	}
	return r.Type.String()
}

// convertToGjsonPath converts a JSONPath expression to a gjson path format
func convertToGjsonPath(path string) string {
	// Remove $ prefix
	path = strings.TrimPrefix(strings.TrimSpace(path), "$")

	// Handle root path
	if path == "" {
		return "@this"
	}

	// Handle bracket notation with quotes: ['name'] and ["name"]
	for _, quote := range []string{"'", "\""} {
		path = strings.ReplaceAll(path, "["+quote, ".")
		path = strings.ReplaceAll(path, quote+"]", "")
	}

	// Replace array notation [n] with .n
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")

	return strings.TrimPrefix(path, ".")
}
