package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

type fileSource struct {
	path string
}

// NewFileSource читает турниры из локального JSON-файла (удобно для разработки).
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %s", ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, s.path, err)
	}
	return f, nil
}

func (s *fileSource) Name() string {
	return "file:" + s.path
}
