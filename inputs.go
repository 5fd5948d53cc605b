package superx

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// maxLineSize bounds a single input record
const maxLineSize = 64 * 1024 * 1024

// ReadStrings reads one string per line from r skipping blank lines.
// Lines are taken as is, no trimming or unescaping is done.
func ReadStrings(r io.Reader) ([]string, error) {
	var strs []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			strs = append(strs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return strs, nil
}

// ReadFile reads input strings from filePath.
// Files ending in .gz or .zst are decompressed on the fly.
func ReadFile(filePath string) ([]string, error) {
	rc, err := OpenInput(filePath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadStrings(rc)
}

// OpenInput opens filePath and wraps it with a decompressor picked by extension
func OpenInput(filePath string) (io.ReadCloser, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(filePath, ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressReader{Reader: d, close: func() error { d.Close(); return f.Close() }}, nil
	case strings.HasSuffix(filePath, ".gz"):
		d, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressReader{Reader: d, close: func() error { _ = d.Close(); return f.Close() }}, nil
	}
	return f, nil
}

type decompressReader struct {
	io.Reader
	close func() error
}

func (d *decompressReader) Close() error {
	return d.close()
}

// WriteFile writes superstring to filePath as a single line
func WriteFile(filePath, superstring string) error {
	return os.WriteFile(filePath, []byte(superstring+"\n"), 0644)
}
