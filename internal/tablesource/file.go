package tablesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// File reads a table from disk. Paths ending in .gz or .zst are decompressed.
type File struct {
	Path string
}

func (f File) Open(context.Context) (io.ReadCloser, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening table %s: %w", f.Path, err)
	}

	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".gz":
		zr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close() //nolint:errcheck
			return nil, fmt.Errorf("reading gzip table %s: %w", f.Path, err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, fh}}, nil
	case ".zst":
		zr, err := zstd.NewReader(fh)
		if err != nil {
			fh.Close() //nolint:errcheck
			return nil, fmt.Errorf("reading zstd table %s: %w", f.Path, err)
		}
		rc := zr.IOReadCloser()
		return &stackedCloser{Reader: rc, closers: []io.Closer{rc, fh}}, nil
	default:
		return fh, nil
	}
}

func (f File) String() string { return f.Path }

// stackedCloser closes a decompressor and the file underneath it.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
