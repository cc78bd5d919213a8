package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/crossword/internal/validator"
)

func TestJSONDecoderPassesFieldsThrough(t *testing.T) {
	dec := NewJSONDecoder(validator.New())
	out := []byte(`{"myStringUnedited":"ABCD","answerArrayFlat":[1,2,3],"legend":{"1":"clue"},"extra":true}`)

	p, err := dec.Decode(context.Background(), out)
	require.NoError(t, err)
	assert.JSONEq(t, `"ABCD"`, string(p.MyStringUnedited))
	assert.JSONEq(t, `[1,2,3]`, string(p.AnswerArrayFlat))
	assert.JSONEq(t, `{"1":"clue"}`, string(p.Legend))
}

func TestJSONDecoderKeepsValueTypes(t *testing.T) {
	dec := NewJSONDecoder(validator.New())
	out := []byte(`{"myStringUnedited":null,"answerArrayFlat":"ABC","legend":[1]}`)

	p, err := dec.Decode(context.Background(), out)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(p.MyStringUnedited))
	assert.Equal(t, `"ABC"`, string(p.AnswerArrayFlat))
	assert.Equal(t, `[1]`, string(p.Legend))
}

func TestJSONDecoderErrors(t *testing.T) {
	dec := NewJSONDecoder(validator.New())
	tests := []struct {
		name    string
		out     string
		wantErr string
	}{
		{"missing keys", `{"legend":{}}`, "generator output missing myStringUnedited, answerArrayFlat"},
		{"not json", `Traceback`, "decode generator output"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dec.Decode(context.Background(), []byte(tc.out))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
