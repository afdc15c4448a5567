package http

import (
	"net/http"

	"go.uber.org/zap"
)

const (
	msgInvalidMovie  = "Invalid movie data"
	msgMovieNotFound = "Movie not found"
	msgInvalidRating = "Rating must be between 1 and 5"
	msgNoMovies      = "No movies found"
)

func (h *Handler) logError(r *http.Request, err error) {
	h.logger.Error("Request failed",
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)
}

// errorResponse sends a JSON {"error": message} body with the given status.
func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := h.writeJSON(w, status, envelope{"error": message}, nil)
	if err != nil {
		h.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logError(r, err)
	h.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func (h *Handler) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func (h *Handler) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusMethodNotAllowed, "the "+r.Method+" method is not supported for this resource")
}

func (h *Handler) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}

func (h *Handler) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (h *Handler) invalidMovieResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug("Rejected movie payload", zap.Error(err))
	h.errorResponse(w, r, http.StatusBadRequest, msgInvalidMovie)
}

func (h *Handler) invalidRatingResponse(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug("Rejected rating payload", zap.Error(err))
	h.errorResponse(w, r, http.StatusBadRequest, msgInvalidRating)
}

func (h *Handler) movieNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusNotFound, msgMovieNotFound)
}

func (h *Handler) noMoviesFoundResponse(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, http.StatusNotFound, msgNoMovies)
}
