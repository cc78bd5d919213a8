package generator

import (
	"context"
	"os"

	"svw.info/crossword/internal/domain"
)

// File serves a payload stored on disk. The file is re-read on every call.
type File struct {
	Path    string
	Decoder Decoder
}

func NewFile(path string, dec Decoder) *File { return &File{Path: path, Decoder: dec} }

func (g *File) Generate(ctx context.Context) (*domain.Payload, error) {
	if g.Decoder == nil {
		return nil, errNoDecoder
	}
	data, err := os.ReadFile(g.Path)
	if err != nil {
		return nil, err
	}
	return g.Decoder.Decode(ctx, data)
}
