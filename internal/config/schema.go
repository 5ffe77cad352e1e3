package config

import (
	"github.com/wesleyorama2/fslat/pkg/jsonschema"
)

// optionsSchema describes the accepted config file layout.
const optionsSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"fileSize": { "type": "integer", "minimum": 0 },
		"numSamples": { "type": "integer", "minimum": 0 },
		"dir": { "type": "string", "minLength": 1 },
		"noColor": { "type": "boolean" }
	},
	"additionalProperties": false
}`

var schema = jsonschema.MustCompile("fslat-options.json", optionsSchema)
