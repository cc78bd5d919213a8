package domain

import "encoding/json"

// Payload is what a puzzle-generation collaborator hands back.
// Fields are kept raw so they are re-emitted exactly as received.
type Payload struct {
	MyStringUnedited json.RawMessage `json:"myStringUnedited"`
	AnswerArrayFlat  json.RawMessage `json:"answerArrayFlat"`
	Legend           json.RawMessage `json:"legend"`
}

// PuzzleResponse is the body of a successful GET /api/crossWord.
type PuzzleResponse struct {
	PuzzleID         string          `json:"puzzleId"`
	Output           string          `json:"output"`
	MyStringUnedited json.RawMessage `json:"myStringUnedited"`
	AnswerArrayFlat  json.RawMessage `json:"answerArrayFlat"`
	Legend           json.RawMessage `json:"legend"`
	// UserAnswers is client-side state; always null from the server.
	UserAnswers json.RawMessage `json:"userAnswers"`
}

// NewPuzzleResponse merges an identifier into a payload.
func NewPuzzleResponse(id string, p *Payload) *PuzzleResponse {
	return &PuzzleResponse{
		PuzzleID:         id,
		Output:           "",
		MyStringUnedited: p.MyStringUnedited,
		AnswerArrayFlat:  p.AnswerArrayFlat,
		Legend:           p.Legend,
	}
}
