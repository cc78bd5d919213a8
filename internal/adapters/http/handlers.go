package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/usecase"
)

// RouteCrossWord is the puzzle endpoint path.
const RouteCrossWord = "/api/crossWord"

type Handler struct {
	UC     *usecase.Service
	Logger *zap.Logger
}

func New(uc *usecase.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{UC: uc, Logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get(RouteCrossWord, h.handleCrossWord)
	r.Get("/healthz", h.handleHealth)
}

type errorResp struct {
	Error string `json:"error"`
}

func (h *Handler) handleCrossWord(w http.ResponseWriter, r *http.Request) {
	resp, err := h.UC.Generate(r.Context())
	status, body := Render(resp, err)
	h.writeJSON(w, status, body)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Render is the single translation from a generation result to an HTTP
// status and body. Every generation failure is a 500.
func Render(resp *domain.PuzzleResponse, err error) (int, any) {
	if err != nil {
		return http.StatusInternalServerError, errorResp{Error: err.Error()}
	}
	if resp == nil {
		return http.StatusInternalServerError, errorResp{Error: "puzzle generation failed"}
	}
	return http.StatusOK, resp
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	if err := writeJSON(w, status, body); err != nil {
		h.Logger.Warn("write response", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusMethodNotAllowed, errorResp{Error: "method not allowed"})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusNotFound, errorResp{Error: "not found"})
}
