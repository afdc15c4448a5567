package movie

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mkvy/moviestore/movie/internal/repository"
	"github.com/mkvy/moviestore/movie/pkg/model"
	"github.com/mkvy/moviestore/pkg/validator"
)

//go:generate mockgen -source=controller.go -destination=mock_test.go -package=movie

var (
	// ErrNotFound is returned when no movie matches the requested id.
	ErrNotFound = errors.New("movie not found")
	// ErrNoResults is returned when a filter, search or ranking query matched nothing.
	ErrNoResults = errors.New("no movies found")
)

// ValidationError is returned when an input fails validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

type movieRepository interface {
	Put(ctx context.Context, movie *model.Movie) error
	Get(ctx context.Context, id string) (*model.Movie, error)
	Update(ctx context.Context, id string, fn func(*model.Movie)) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.Movie, error)
}

// Controller defines the movie store: record mutations, lookups and
// rating aggregation on top of a repository.
type Controller struct {
	repo movieRepository
}

// New creates a movie controller.
func New(repo movieRepository) *Controller {
	return &Controller{repo}
}

// ValidateMovieInput checks that every required movie field is present.
func ValidateMovieInput(v *validator.Validator, in *model.MovieInput) {
	v.Check(in.ID != nil, "id", "must be provided")
	v.Check(in.Title != nil, "title", "must be provided")
	v.Check(in.Director != nil, "director", "must be provided")
	v.Check(in.ReleaseYear != nil, "releaseYear", "must be provided")
	v.Check(in.Genre != nil, "genre", "must be provided")
}

// ValidateRating checks that a rating is present and is a whole number in [1,5].
func ValidateRating(v *validator.Validator, rating *float64) {
	if rating == nil {
		v.AddError("rating", "must be provided")
		return
	}
	v.Check(validator.Between(*rating, 1, 5), "rating", "must be between 1 and 5")
	v.Check(validator.Integral(*rating), "rating", "must be a whole number")
}

// Add appends a new movie with no ratings.
func (c *Controller) Add(ctx context.Context, in *model.MovieInput) error {
	v := validator.New()
	ValidateMovieInput(v, in)
	if !v.Valid() {
		return &ValidationError{Fields: v.Errors}
	}
	return c.repo.Put(ctx, &model.Movie{
		ID:          *in.ID,
		Title:       *in.Title,
		Director:    *in.Director,
		ReleaseYear: *in.ReleaseYear,
		Genre:       *in.Genre,
		Ratings:     []int{},
	})
}

// Update merges the fields present in patch into the movie with the given id.
func (c *Controller) Update(ctx context.Context, id string, patch model.MoviePatch) error {
	return c.mapErr(c.repo.Update(ctx, id, patch.Apply))
}

// Get returns the movie with the given id.
func (c *Controller) Get(ctx context.Context, id string) (*model.Movie, error) {
	m, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, c.mapErr(err)
	}
	return m, nil
}

// Delete removes the movie with the given id.
func (c *Controller) Delete(ctx context.Context, id string) error {
	return c.mapErr(c.repo.Delete(ctx, id))
}

// AddRating appends a rating to the movie with the given id.
// The rating is validated before the movie is looked up.
func (c *Controller) AddRating(ctx context.Context, id string, rating *float64) error {
	v := validator.New()
	ValidateRating(v, rating)
	if !v.Valid() {
		return &ValidationError{Fields: v.Errors}
	}
	value := int(*rating)
	return c.mapErr(c.repo.Update(ctx, id, func(m *model.Movie) {
		m.Ratings = append(m.Ratings, value)
	}))
}

// AverageRating returns the mean rating of a movie formatted with two decimals.
// The boolean is false when the movie has no ratings yet.
func (c *Controller) AverageRating(ctx context.Context, id string) (string, bool, error) {
	m, err := c.Get(ctx, id)
	if err != nil {
		return "", false, err
	}
	avg, ok := m.AverageRating()
	if !ok {
		return "", false, nil
	}
	return strconv.FormatFloat(avg, 'f', 2, 64), true, nil
}

// TopRated returns every rated movie ordered by mean rating, highest first.
// Movies with equal means keep their store order.
func (c *Controller) TopRated(ctx context.Context) ([]*model.Movie, error) {
	type ranked struct {
		movie *model.Movie
		avg   float64
	}
	movies, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var rs []ranked
	for _, m := range movies {
		if avg, ok := m.AverageRating(); ok {
			rs = append(rs, ranked{m, avg})
		}
	}
	if len(rs) == 0 {
		return nil, ErrNoResults
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].avg > rs[j].avg })
	res := make([]*model.Movie, len(rs))
	for i, r := range rs {
		res[i] = r.movie
	}
	return res, nil
}

// ByGenre returns the movies whose genre equals genre, ignoring case.
func (c *Controller) ByGenre(ctx context.Context, genre string) ([]*model.Movie, error) {
	return c.filter(ctx, func(m *model.Movie) bool {
		return strings.EqualFold(m.Genre, genre)
	})
}

// ByDirector returns the movies whose director equals director, ignoring case.
func (c *Controller) ByDirector(ctx context.Context, director string) ([]*model.Movie, error) {
	return c.filter(ctx, func(m *model.Movie) bool {
		return strings.EqualFold(m.Director, director)
	})
}

// SearchByTitle returns the movies whose title contains keyword, ignoring case.
// An empty keyword matches every movie.
func (c *Controller) SearchByTitle(ctx context.Context, keyword string) ([]*model.Movie, error) {
	keyword = strings.ToLower(keyword)
	return c.filter(ctx, func(m *model.Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), keyword)
	})
}

func (c *Controller) filter(ctx context.Context, match func(*model.Movie) bool) ([]*model.Movie, error) {
	movies, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var res []*model.Movie
	for _, m := range movies {
		if match(m) {
			res = append(res, m)
		}
	}
	if len(res) == 0 {
		return nil, ErrNoResults
	}
	return res, nil
}

func (c *Controller) mapErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("movie repository: %w", err)
	}
	return nil
}
