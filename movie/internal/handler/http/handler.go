package http

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/uber-go/tally/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/mkvy/moviestore/movie/internal/controller/movie"
)

const tracerName = "github.com/mkvy/moviestore/movie/internal/handler/http"

// LimiterConfig configures the per-client rate limiter.
type LimiterConfig struct {
	RPS     float64
	Burst   int
	Enabled bool
}

// Handler defines the movie store HTTP handler.
type Handler struct {
	ctrl    *movie.Controller
	logger  *zap.Logger
	scope   tally.Scope
	tracer  trace.Tracer
	limiter LimiterConfig

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new movie store HTTP handler.
func New(ctrl *movie.Controller, logger *zap.Logger, scope tally.Scope, limiter LimiterConfig) *Handler {
	return &Handler{
		ctrl:    ctrl,
		logger:  logger,
		scope:   scope,
		tracer:  otel.Tracer(tracerName),
		limiter: limiter,
		stop:    make(chan struct{}),
	}
}

// Close stops the background goroutines started by Routes and waits for
// them to exit. It is safe to call more than once.
func (h *Handler) Close() {
	h.stopOnce.Do(func() { close(h.stop) })
	h.wg.Wait()
}

// Routes returns the router serving the movie API. Static paths are
// registered ahead of /movies/{id} so they win the match.
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(h.notFoundResponse)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.methodNotAllowedResponse)
	r.Use(h.instrument)

	r.HandleFunc("/healthz", h.healthcheck).Methods(http.MethodGet)

	r.HandleFunc("/movies", h.addMovie).Methods(http.MethodPost)
	r.HandleFunc("/movies/", h.addMovie).Methods(http.MethodPost)
	r.HandleFunc("/movies/top-rated", h.topRated).Methods(http.MethodGet)
	r.HandleFunc("/movies/search", h.searchByTitle).Methods(http.MethodGet)
	r.HandleFunc("/movies/genre/{genre}", h.byGenre).Methods(http.MethodGet)
	r.HandleFunc("/movies/director/{director}", h.byDirector).Methods(http.MethodGet)
	r.HandleFunc("/movies/{id}/rating", h.addRating).Methods(http.MethodPost)
	r.HandleFunc("/movies/{id}/rating", h.averageRating).Methods(http.MethodGet)
	r.HandleFunc("/movies/{id}", h.getMovie).Methods(http.MethodGet)
	r.HandleFunc("/movies/{id}", h.updateMovie).Methods(http.MethodPatch)
	r.HandleFunc("/movies/{id}", h.deleteMovie).Methods(http.MethodDelete)

	return h.recoverPanic(h.rateLimit(r))
}

func (h *Handler) healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
