// Package config resolves the options of a benchmark run.
//
// Options come from built-in defaults, an optional YAML or JSON file, and
// command-line flags, in increasing order of precedence. Merging with flags
// happens in the cli package; this package only loads and validates.
//
// Example YAML:
//
//	fileSize: 4096
//	numSamples: 10000
//	dir: /mnt/scratch/.testing
//	noColor: true
//
// A single file may hold several named profiles; the profile path selects
// the object to use:
//
//	profiles:
//	  nvme:
//	    fileSize: 4096
//	  tmpfs:
//	    dir: /dev/shm/.testing
//
//	opts, err := config.LoadFile("fslat.yaml", "profiles.nvme")
package config

import (
	"github.com/wesleyorama2/fslat/internal/bench"
)

const (
	// DefaultFileSize is the number of bytes written per file.
	DefaultFileSize = 1024

	// DefaultNumSamples is the number of files written per run.
	DefaultNumSamples = 1000
)

// Options is the configuration of one write benchmark run.
type Options struct {
	// FileSize is the number of bytes written to each file
	FileSize int `json:"fileSize" yaml:"fileSize"`

	// NumSamples is the number of files to create
	NumSamples int `json:"numSamples" yaml:"numSamples"`

	// Dir is the working directory; it must not exist before the run
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// NoColor disables colored log labels
	NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// Defaults returns the options used when nothing else is configured.
func Defaults() *Options {
	return &Options{
		FileSize:   DefaultFileSize,
		NumSamples: DefaultNumSamples,
		Dir:        bench.DefaultDir,
	}
}
