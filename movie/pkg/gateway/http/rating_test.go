package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkvy/moviestore/movie/pkg/gateway"
	"github.com/mkvy/moviestore/movie/pkg/testutil"
	"github.com/mkvy/moviestore/pkg/discovery"
	"github.com/mkvy/moviestore/pkg/discovery/memory"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	srv := httptest.NewServer(testutil.NewTestMovieHTTPHandler())
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Post(srv.URL+"/movies/", "application/json", strings.NewReader(
		`{"id":"1","title":"Heat","director":"Michael Mann","releaseYear":1995,"genre":"Action"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 201, resp.StatusCode)

	ctx := context.Background()
	registry := memory.NewRegistry()
	require.NoError(t, registry.Register(ctx, "movie-1", "movie", strings.TrimPrefix(srv.URL, "http://")))
	return New(registry, "movie")
}

func TestPutAndGetRating(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(t)

	_, ok, err := g.GetAverageRating(ctx, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.PutRating(ctx, "1", 5))
	require.NoError(t, g.PutRating(ctx, "1", 4))

	avg, ok, err := g.GetAverageRating(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4.50", avg)
}

func TestRatingErrors(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(t)

	assert.ErrorIs(t, g.PutRating(ctx, "1", 9), gateway.ErrInvalidRating)
	assert.ErrorIs(t, g.PutRating(ctx, "2", 3), gateway.ErrNotFound)

	_, _, err := g.GetAverageRating(ctx, "2")
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestNoInstances(t *testing.T) {
	g := New(memory.NewRegistry(), "movie")
	err := g.PutRating(context.Background(), "1", 3)
	assert.ErrorIs(t, err, discovery.ErrNotFound)
}
