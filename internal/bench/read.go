package bench

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"time"
)

const readChunk = 256 * 1024

// ReadResult describes one pass over a file.
type ReadResult struct {
	Path    string
	Bytes   int64
	Token   uint64
	Elapsed time.Duration
}

// ReadFile reads path sequentially and folds its contents into a token.
func ReadFile(path string) (*ReadResult, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	// readChunk is a multiple of 8, so every chunk but the last is word aligned.
	buf := make([]byte, readChunk)
	result := &ReadResult{Path: path}
	for {
		r, err := io.ReadFull(f, buf)
		result.Bytes += int64(r)
		result.Token += sumWords(buf[:r])

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, &IOError{Op: "read", Path: path, Err: err}
		}
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// sumWords adds up the little-endian 64-bit words of b with wraparound.
// A trailing partial word is zero-padded.
func sumWords(b []byte) uint64 {
	var token uint64
	for len(b) >= 8 {
		token += binary.LittleEndian.Uint64(b)
		b = b[8:]
	}
	if len(b) > 0 {
		var tail [8]byte
		copy(tail[:], b)
		token += binary.LittleEndian.Uint64(tail[:])
	}
	return token
}
