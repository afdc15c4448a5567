package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkvy/moviestore/movie/internal/controller/movie"
	"github.com/mkvy/moviestore/movie/internal/repository/memory"
	"github.com/mkvy/moviestore/movie/pkg/model"
)

func newTestIngester(t *testing.T) (*Ingester, *movie.Controller) {
	t.Helper()
	ctrl := movie.New(memory.New())
	id, title, director, genre, year := "1", "Heat", "Michael Mann", "Action", 1995
	require.NoError(t, ctrl.Add(context.Background(), &model.MovieInput{
		ID: &id, Title: &title, Director: &director, Genre: &genre, ReleaseYear: &year,
	}))
	return &Ingester{store: ctrl, logger: zap.NewNop()}, ctrl
}

func TestHandleAppliesRating(t *testing.T) {
	ctx := context.Background()
	i, ctrl := newTestIngester(t)

	require.NoError(t, i.Handle(ctx, []byte(`{"movieId":"1","value":4}`)))
	require.NoError(t, i.Handle(ctx, []byte(`{"movieId":"1","value":5}`)))

	avg, ok, err := ctrl.AverageRating(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4.50", avg)
}

func TestHandleRejectsBadEvents(t *testing.T) {
	ctx := context.Background()
	i, ctrl := newTestIngester(t)

	err := i.Handle(ctx, []byte(`not json`))
	assert.Error(t, err)

	err = i.Handle(ctx, []byte(`{"movieId":"1","value":7}`))
	var verr *movie.ValidationError
	assert.ErrorAs(t, err, &verr)

	err = i.Handle(ctx, []byte(`{"movieId":"404","value":3}`))
	assert.ErrorIs(t, err, movie.ErrNotFound)

	_, ok, err := ctrl.AverageRating(ctx, "1")
	require.NoError(t, err)
	assert.False(t, ok)
}
