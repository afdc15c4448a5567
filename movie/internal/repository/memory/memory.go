package memory

import (
	"context"
	"sync"

	"github.com/mkvy/moviestore/movie/internal/repository"
	"github.com/mkvy/moviestore/movie/pkg/model"
)

// Repository defines an in-memory movie repository.
// Movies are kept in insertion order.
type Repository struct {
	sync.RWMutex
	data []*model.Movie
}

// New is factory method for repository.
func New() *Repository {
	return &Repository{}
}

// Put appends a movie to the end of the collection.
func (r *Repository) Put(_ context.Context, movie *model.Movie) error {
	r.Lock()
	defer r.Unlock()
	r.data = append(r.data, movie.Clone())
	return nil
}

// Get retrieves the first movie with the given id.
func (r *Repository) Get(_ context.Context, id string) (*model.Movie, error) {
	r.RLock()
	defer r.RUnlock()
	i := r.indexOf(id)
	if i == -1 {
		return nil, repository.ErrNotFound
	}
	return r.data[i].Clone(), nil
}

// Update applies fn to the first movie with the given id in place.
func (r *Repository) Update(_ context.Context, id string, fn func(*model.Movie)) error {
	r.Lock()
	defer r.Unlock()
	i := r.indexOf(id)
	if i == -1 {
		return repository.ErrNotFound
	}
	fn(r.data[i])
	return nil
}

// Delete removes the first movie with the given id, preserving the order of the rest.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.Lock()
	defer r.Unlock()
	i := r.indexOf(id)
	if i == -1 {
		return repository.ErrNotFound
	}
	copy(r.data[i:], r.data[i+1:])
	r.data[len(r.data)-1] = nil
	r.data = r.data[:len(r.data)-1]
	return nil
}

// List returns a snapshot of all movies in insertion order.
func (r *Repository) List(_ context.Context) ([]*model.Movie, error) {
	r.RLock()
	defer r.RUnlock()
	res := make([]*model.Movie, 0, len(r.data))
	for _, m := range r.data {
		res = append(res, m.Clone())
	}
	return res, nil
}

// Len returns the number of stored movies.
func (r *Repository) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.data)
}

func (r *Repository) indexOf(id string) int {
	for i, m := range r.data {
		if m.ID == id {
			return i
		}
	}
	return -1
}
