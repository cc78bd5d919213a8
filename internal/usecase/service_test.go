package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/generator"
	"svw.info/crossword/internal/validator"
)

type fixedID string

func (f fixedID) NewID() string { return string(f) }

type recorder struct {
	outcomes []string
}

func (r *recorder) ObserveGeneration(outcome string, _ time.Duration) {
	r.outcomes = append(r.outcomes, outcome)
}

func samplePayload() *domain.Payload {
	return &domain.Payload{
		MyStringUnedited: json.RawMessage(`"ABCD"`),
		AnswerArrayFlat:  json.RawMessage(`[1,2,3]`),
		Legend:           json.RawMessage(`{"1":"clue"}`),
	}
}

func TestGenerateSuccess(t *testing.T) {
	rec := &recorder{}
	g := generator.Func(func(context.Context) (*domain.Payload, error) { return samplePayload(), nil })
	svc := NewService(g, fixedID("2024-01-01T00-00-00-123456"), validator.New(), rec, nil)

	resp, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00-00-00-123456", resp.PuzzleID)
	assert.Equal(t, "", resp.Output)
	assert.Equal(t, json.RawMessage(`"ABCD"`), resp.MyStringUnedited)
	assert.Equal(t, json.RawMessage(`[1,2,3]`), resp.AnswerArrayFlat)
	assert.Equal(t, json.RawMessage(`{"1":"clue"}`), resp.Legend)
	assert.Nil(t, resp.UserAnswers)
	assert.Equal(t, []string{OutcomeSuccess}, rec.outcomes)
}

func TestGenerateWrapsCollaboratorError(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("boom")
	g := generator.Func(func(context.Context) (*domain.Payload, error) { return nil, boom })
	svc := NewService(g, fixedID("x"), validator.New(), rec, nil)

	resp, err := svc.Generate(context.Background())
	require.Nil(t, resp)
	require.EqualError(t, err, "boom")
	assert.True(t, domain.IsGenerationFailure(err))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{OutcomeFailure}, rec.outcomes)
}

func TestGenerateRejectsMalformedPayload(t *testing.T) {
	g := generator.Func(func(context.Context) (*domain.Payload, error) {
		return &domain.Payload{AnswerArrayFlat: json.RawMessage(`[1,`), Legend: json.RawMessage(`{}`)}, nil
	})
	svc := NewService(g, fixedID("x"), validator.New(), nil, nil)

	_, err := svc.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsGenerationFailure(err))
	assert.Equal(t, "myStringUnedited is missing; answerArrayFlat is not valid JSON", err.Error())
}

func TestGenerateNilPayloadWithoutValidator(t *testing.T) {
	g := generator.Func(func(context.Context) (*domain.Payload, error) { return nil, nil })
	svc := NewService(g, fixedID("x"), nil, nil, nil)

	_, err := svc.Generate(context.Background())
	assert.True(t, domain.IsGenerationFailure(err))
}

func TestGenerateNotConfigured(t *testing.T) {
	_, err := (&Service{}).Generate(context.Background())
	require.ErrorIs(t, err, errNotConfigured)
	assert.True(t, domain.IsGenerationFailure(err))
}
