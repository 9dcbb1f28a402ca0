package storage

import (
	"bytes"
	"context"
	_ "embed"
	"io"
)

//go:embed data/tournaments.json
var bundledTournaments []byte

type bundledSource struct {
	data []byte
}

// NewBundledSource returns the tournament list compiled into the binary.
func NewBundledSource() Source {
	return &bundledSource{data: bundledTournaments}
}

func (s *bundledSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func (s *bundledSource) Name() string {
	return "bundled"
}
