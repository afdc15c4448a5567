package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mkvy/moviestore/movie/internal/controller/movie"
	"github.com/mkvy/moviestore/movie/pkg/model"
)

func (h *Handler) addMovie(w http.ResponseWriter, r *http.Request) {
	var in model.MovieInput
	if err := h.readJSON(w, r, &in); err != nil {
		h.invalidMovieResponse(w, r, err)
		return
	}

	var verr *movie.ValidationError
	err := h.ctrl.Add(r.Context(), &in)
	switch {
	case errors.As(err, &verr):
		h.invalidMovieResponse(w, r, err)
		return
	case err != nil:
		h.serverErrorResponse(w, r, err)
		return
	}

	h.writeMessage(w, r, http.StatusCreated, "Movie added successfully")
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch model.MoviePatch
	if err := h.readJSON(w, r, &patch); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	if err := h.ctrl.Update(r.Context(), id, patch); err != nil {
		h.movieError(w, r, err)
		return
	}

	h.writeMessage(w, r, http.StatusOK, "Movie updated successfully")
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	m, err := h.ctrl.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.movieError(w, r, err)
		return
	}

	if err := h.writeJSON(w, http.StatusOK, m, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.movieError(w, r, err)
		return
	}

	h.writeMessage(w, r, http.StatusOK, "Movie deleted successfully")
}

func (h *Handler) addRating(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Rating *float64 `json:"rating"`
	}
	if err := h.readJSON(w, r, &input); err != nil {
		h.invalidRatingResponse(w, r, err)
		return
	}

	if err := h.ctrl.AddRating(r.Context(), mux.Vars(r)["id"], input.Rating); err != nil {
		h.movieError(w, r, err)
		return
	}

	h.writeMessage(w, r, http.StatusOK, "Rating added successfully")
}

func (h *Handler) averageRating(w http.ResponseWriter, r *http.Request) {
	avg, ok, err := h.ctrl.AverageRating(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.movieError(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.writeJSON(w, http.StatusOK, envelope{"averageRating": avg}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) topRated(w http.ResponseWriter, r *http.Request) {
	movies, err := h.ctrl.TopRated(r.Context())
	h.writeMovies(w, r, movies, err)
}

func (h *Handler) byGenre(w http.ResponseWriter, r *http.Request) {
	movies, err := h.ctrl.ByGenre(r.Context(), mux.Vars(r)["genre"])
	h.writeMovies(w, r, movies, err)
}

func (h *Handler) byDirector(w http.ResponseWriter, r *http.Request) {
	movies, err := h.ctrl.ByDirector(r.Context(), mux.Vars(r)["director"])
	h.writeMovies(w, r, movies, err)
}

func (h *Handler) searchByTitle(w http.ResponseWriter, r *http.Request) {
	movies, err := h.ctrl.SearchByTitle(r.Context(), r.URL.Query().Get("keyword"))
	h.writeMovies(w, r, movies, err)
}

func (h *Handler) writeMovies(w http.ResponseWriter, r *http.Request, movies []*model.Movie, err error) {
	if err != nil {
		h.movieError(w, r, err)
		return
	}
	if err := h.writeJSON(w, http.StatusOK, movies, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// movieError maps controller errors onto responses. Only AddRating
// returns a ValidationError on these paths.
func (h *Handler) movieError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *movie.ValidationError
	switch {
	case errors.As(err, &verr):
		h.invalidRatingResponse(w, r, err)
	case errors.Is(err, movie.ErrNotFound):
		h.movieNotFoundResponse(w, r)
	case errors.Is(err, movie.ErrNoResults):
		h.noMoviesFoundResponse(w, r)
	default:
		h.serverErrorResponse(w, r, err)
	}
}
