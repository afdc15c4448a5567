package model

// Movie defines a movie record together with the ratings submitted for it.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	ReleaseYear int    `json:"releaseYear"`
	Genre       string `json:"genre"`
	Ratings     []int  `json:"ratings"`
}

// Clone returns a deep copy of the movie.
func (m *Movie) Clone() *Movie {
	c := *m
	c.Ratings = make([]int, len(m.Ratings))
	copy(c.Ratings, m.Ratings)
	return &c
}

// AverageRating returns the arithmetic mean of the movie ratings.
// The second return value is false when the movie has no ratings.
func (m *Movie) AverageRating() (float64, bool) {
	if len(m.Ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range m.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(m.Ratings)), true
}

// MovieInput is the payload of a movie creation request.
// Nil fields were absent from the payload.
type MovieInput struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Director    *string `json:"director"`
	ReleaseYear *int    `json:"releaseYear"`
	Genre       *string `json:"genre"`
}

// MoviePatch holds the fields of a partial movie update.
// Only non-nil fields are applied.
type MoviePatch struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Director    *string `json:"director"`
	ReleaseYear *int    `json:"releaseYear"`
	Genre       *string `json:"genre"`
}

// Apply merges the patch into m. Ratings are never touched.
func (p MoviePatch) Apply(m *Movie) {
	if p.ID != nil {
		m.ID = *p.ID
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Director != nil {
		m.Director = *p.Director
	}
	if p.ReleaseYear != nil {
		m.ReleaseYear = *p.ReleaseYear
	}
	if p.Genre != nil {
		m.Genre = *p.Genre
	}
}

// RatingEvent defines an event of a rating submitted for a movie.
type RatingEvent struct {
	MovieID string  `json:"movieId"`
	Value   float64 `json:"value"`
}
