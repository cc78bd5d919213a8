package validator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"svw.info/crossword/internal/domain"
)

// Field names a collaborator payload must expose.
const (
	FieldMyStringUnedited = "myStringUnedited"
	FieldAnswerArrayFlat  = "answerArrayFlat"
	FieldLegend           = "legend"
)

var errNilPayload = errors.New("generator returned no payload")

// PresenceValidator checks that every pass-through field is present and is
// well-formed JSON. Values of any JSON kind are accepted.
type PresenceValidator struct{}

func New() *PresenceValidator { return &PresenceValidator{} }

func (v *PresenceValidator) Validate(ctx context.Context, p *domain.Payload) error {
	if p == nil {
		return errNilPayload
	}
	var problems []string
	for _, f := range []struct {
		name string
		raw  json.RawMessage
	}{
		{FieldMyStringUnedited, p.MyStringUnedited},
		{FieldAnswerArrayFlat, p.AnswerArrayFlat},
		{FieldLegend, p.Legend},
	} {
		if err := checkRaw(f.name, f.raw); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ValidateRaw reports required keys absent from a decoded generator object.
func (v *PresenceValidator) ValidateRaw(ctx context.Context, fields map[string]json.RawMessage) error {
	var missing []string
	for _, k := range []string{FieldMyStringUnedited, FieldAnswerArrayFlat, FieldLegend} {
		if _, ok := fields[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("generator output missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// checkRaw fails on values the JSON encoder would refuse after the status
// line has been written.
func checkRaw(name string, raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return fmt.Errorf("%s is missing", name)
	}
	if !json.Valid(trimmed) {
		return fmt.Errorf("%s is not valid JSON", name)
	}
	return nil
}
