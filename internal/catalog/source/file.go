package source

import (
	"context"
	"fmt"
	"os"

	"github.com/catalog-explorer/server/internal/catalog/loader"
	"github.com/catalog-explorer/server/internal/catalog/model"
	errx "github.com/catalog-explorer/server/internal/core/error"
	logx "github.com/catalog-explorer/server/pkg/logger"
)

// FileSource reads the catalog from a JSON file on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.Path
}

func (s *FileSource) Fetch(ctx context.Context) ([]*model.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errx.WrapSource(fmt.Errorf("read %s: %w", s.Path, err), s.Name())
	}
	logx.Debug().Str("path", s.Path).Int("bytes", len(data)).Msg("read catalog file")

	records, err := Decode(data)
	if err != nil {
		return nil, errx.WrapSource(err, s.Name())
	}
	return records, nil
}

var _ loader.Source = (*FileSource)(nil)
