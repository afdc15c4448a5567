package memory

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkvy/moviestore/movie/internal/repository"
	"github.com/mkvy/moviestore/movie/pkg/model"
)

func movie(id, title string) *model.Movie {
	return &model.Movie{ID: id, Title: title, Director: "d", ReleaseYear: 2000, Genre: "g", Ratings: []int{}}
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	r := New()
	want := movie("1", "Alien")
	require.NoError(t, r.Put(ctx, want))

	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}

	_, err = r.Get(ctx, "2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := New()
	require.NoError(t, r.Put(ctx, movie("1", "Alien")))

	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	got.Title = "changed"
	got.Ratings = append(got.Ratings, 5)

	again, err := r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Alien", again.Title)
	assert.Empty(t, again.Ratings)
}

func TestDuplicateIDsFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	r := New()
	require.NoError(t, r.Put(ctx, movie("1", "First")))
	require.NoError(t, r.Put(ctx, movie("1", "Second")))

	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	require.NoError(t, r.Delete(ctx, "1"))
	got, err = r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	r := New()
	require.NoError(t, r.Put(ctx, movie("1", "Alien")))

	require.NoError(t, r.Update(ctx, "1", func(m *model.Movie) {
		m.Ratings = append(m.Ratings, 4)
	}))
	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got.Ratings)

	err = r.Update(ctx, "missing", func(*model.Movie) { t.Fatal("must not be called") })
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	r := New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.Put(ctx, movie(id, id)))
	}

	require.NoError(t, r.Delete(ctx, "b"))
	assert.Equal(t, 2, r.Len())
	assert.ErrorIs(t, r.Delete(ctx, "b"), repository.ErrNotFound)

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)
}
