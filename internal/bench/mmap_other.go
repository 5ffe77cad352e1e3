//go:build !unix

package bench

import (
	"errors"
	"runtime"
)

// MapFile is not available on this platform.
func MapFile(path string) (*ReadResult, error) {
	return nil, &IOError{Op: "map", Path: path, Err: errors.New("mmap is not supported on " + runtime.GOOS)}
}
