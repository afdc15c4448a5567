package testutil

import (
	"net/http"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"github.com/mkvy/moviestore/movie/internal/controller/movie"
	httphandler "github.com/mkvy/moviestore/movie/internal/handler/http"
	"github.com/mkvy/moviestore/movie/internal/repository/memory"
)

// NewTestMovieHTTPHandler creates a movie store HTTP handler backed by a
// fresh in-memory repository, to be used in tests.
func NewTestMovieHTTPHandler() http.Handler {
	r := memory.New()
	ctrl := movie.New(r)
	h := httphandler.New(ctrl, zap.NewNop(), tally.NoopScope, httphandler.LimiterConfig{})
	return h.Routes()
}
