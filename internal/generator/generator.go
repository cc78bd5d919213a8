// Package generator adapts external crossword generators to ports.Generator.
package generator

import (
	"context"
	"errors"

	"svw.info/crossword/internal/domain"
)

// Format names how a generator writes its result.
const (
	FormatJSON = "json"
	FormatGrid = "grid"
)

var errNoDecoder = errors.New("generator: no output decoder configured")

// Func lets an ordinary function act as a generator.
type Func func(ctx context.Context) (*domain.Payload, error)

func (f Func) Generate(ctx context.Context) (*domain.Payload, error) { return f(ctx) }

// Decoder turns raw generator output into a payload.
type Decoder interface {
	Decode(ctx context.Context, out []byte) (*domain.Payload, error)
}
