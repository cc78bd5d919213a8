package domain

import "errors"

// GenerationFailure wraps any error surfaced while producing a puzzle.
// Its message is the underlying error's message, unchanged.
type GenerationFailure struct {
	Err error
}

func (f *GenerationFailure) Error() string {
	if f == nil || f.Err == nil {
		return "puzzle generation failed"
	}
	return f.Err.Error()
}

func (f *GenerationFailure) Unwrap() error { return f.Err }

// NewGenerationFailure wraps err; a nil err stays nil.
// An err that already is a GenerationFailure is returned as-is.
func NewGenerationFailure(err error) error {
	if err == nil {
		return nil
	}
	var gf *GenerationFailure
	if errors.As(err, &gf) {
		return err
	}
	return &GenerationFailure{Err: err}
}

// IsGenerationFailure reports whether err is or wraps a GenerationFailure.
func IsGenerationFailure(err error) bool {
	var gf *GenerationFailure
	return errors.As(err, &gf)
}
