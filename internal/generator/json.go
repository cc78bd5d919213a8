package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/ports"
	"svw.info/crossword/internal/validator"
)

// JSONDecoder reads a single JSON object carrying the payload keys.
type JSONDecoder struct {
	Validator ports.Validator
}

func NewJSONDecoder(v ports.Validator) *JSONDecoder { return &JSONDecoder{Validator: v} }

func (d *JSONDecoder) Decode(ctx context.Context, out []byte) (*domain.Payload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(out, &fields); err != nil {
		return nil, fmt.Errorf("decode generator output: %w", err)
	}
	if d.Validator != nil {
		if err := d.Validator.ValidateRaw(ctx, fields); err != nil {
			return nil, err
		}
	}
	return &domain.Payload{
		MyStringUnedited: fields[validator.FieldMyStringUnedited],
		AnswerArrayFlat:  fields[validator.FieldAnswerArrayFlat],
		Legend:           fields[validator.FieldLegend],
	}, nil
}
