package cmd

import (
	"context"
	"os"
)

// PageReader reads a page's raw text for a command. Commands receive it by
// injection so tests can substitute in-memory pages.
type PageReader interface {
	ReadPage(ctx context.Context, path string) ([]byte, error)
}

// filePageReader implements PageReader using OS file I/O.
type filePageReader struct{}

func newDefaultPageReader() *filePageReader {
	return &filePageReader{}
}

func (r *filePageReader) ReadPage(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}
