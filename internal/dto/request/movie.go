package request

// MovieRequest is the writable field set of a movie. It is used for both
// create and full-replace update: a nil field is stored as NULL.
type MovieRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
	Trailer     *string  `json:"trailer" validate:"omitempty,max=255"`
	Year        *int     `json:"year" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0"`
	GenreID     *int64   `json:"genre_id" validate:"omitempty,gt=0"`
	DirectorID  *int64   `json:"director_id" validate:"omitempty,gt=0"`
}

// MovieListQuery holds the optional equality filters of GET /movies.
type MovieListQuery struct {
	DirectorID *int64
	GenreID    *int64
}
