package ports

import (
	"context"
	"encoding/json"
	"time"

	"svw.info/crossword/internal/domain"
)

// Generator produces one crossword payload per call.
type Generator interface {
	Generate(ctx context.Context) (*domain.Payload, error)
}

// IDSource mints puzzle identifiers.
type IDSource interface {
	NewID() string
}

// Validator checks the shape of a collaborator payload.
type Validator interface {
	Validate(ctx context.Context, p *domain.Payload) error
	// ValidateRaw checks a decoded JSON object before it becomes a Payload.
	ValidateRaw(ctx context.Context, fields map[string]json.RawMessage) error
}

// Revealer fills in a few answer letters of a puzzle string.
type Revealer interface {
	Reveal(puzzle string, answers []string, n int) string
}

// Recorder observes generation outcomes.
type Recorder interface {
	ObserveGeneration(outcome string, d time.Duration)
}
