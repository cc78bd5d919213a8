package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterOptions are the optional collaborators of NewRouter.
type RouterOptions struct {
	Logger   *zap.Logger
	Observer RequestObserver
	// Metrics, when set, is served at /metrics.
	Metrics http.Handler
}

// NewRouter mounts h with request IDs, request logging and panic recovery.
// The result is a plain http.Handler any host can dispatch to.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger, opts.Observer))
	r.Use(middleware.Recoverer)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	h.Register(r)
	return r
}
