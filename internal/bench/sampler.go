package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultDir is the working directory used when none is configured.
	DefaultDir = ".testing"

	dirMode  = 0o755
	fileMode = 0o644

	writeChunk = 64 * 1024
)

// Sampler runs the write benchmark.
type Sampler struct {
	Dir        string
	FileSize   int
	NumSamples int

	// now is the clock used for timestamps; tests may replace it.
	now func() time.Time
}

// NewSampler creates a sampler writing numSamples files of fileSize bytes into dir.
func NewSampler(dir string, fileSize, numSamples int) *Sampler {
	if dir == "" {
		dir = DefaultDir
	}
	return &Sampler{
		Dir:        dir,
		FileSize:   fileSize,
		NumSamples: numSamples,
		now:        time.Now,
	}
}

// Run creates the working directory and takes NumSamples measurements.
//
// The directory must not exist yet. The first I/O error stops the run and no
// samples are returned.
func (s *Sampler) Run() ([]time.Duration, error) {
	if s.FileSize < 0 {
		return nil, fmt.Errorf("file size must not be negative, got %d", s.FileSize)
	}
	if s.NumSamples < 0 {
		return nil, fmt.Errorf("sample count must not be negative, got %d", s.NumSamples)
	}

	if err := os.Mkdir(s.Dir, dirMode); err != nil {
		return nil, &IOError{Op: "make dir", Path: s.Dir, Err: err}
	}

	buf := make([]byte, min(s.FileSize, writeChunk))
	samples := make([]time.Duration, 0, s.NumSamples)
	for n := 0; n < s.NumSamples; n++ {
		path := Filename(s.Dir, n)

		start := s.now()
		if err := writeFile(path, s.FileSize, buf); err != nil {
			return nil, err
		}
		end := s.now()

		samples = append(samples, end.Sub(start))
	}

	return samples, nil
}

// Filename returns the path of the n-th test file inside dir.
func Filename(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("test-file-%06d.bin", n))
}

// WriteFile exclusively creates path and writes size zero bytes to it.
//
// The file is closed before returning but not synced.
func WriteFile(path string, size int) error {
	return writeFile(path, size, make([]byte, min(size, writeChunk)))
}

// writeFile writes size bytes to a new file at path, reusing buf for every chunk.
func writeFile(path string, size int, buf []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}

	for remaining := size; remaining > 0; {
		w, err := f.Write(buf[:min(len(buf), remaining)])
		if err != nil {
			f.Close()
			return &IOError{Op: "write to", Path: path, Err: err}
		}
		remaining -= w
	}

	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}
