package response

import "movie-catalog/internal/data/entity"

// MovieResponse always carries every field; NULL columns serialize as null.
type MovieResponse struct {
	ID          int64    `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Trailer     *string  `json:"trailer"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	GenreID     *int64   `json:"genre_id"`
	DirectorID  *int64   `json:"director_id"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Trailer:     movie.Trailer,
		Year:        movie.Year,
		Rating:      movie.Rating,
		GenreID:     movie.GenreID,
		DirectorID:  movie.DirectorID,
	}
}

// MoviesToResponse keeps the store order and never returns nil.
func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	resp := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		resp = append(resp, MovieToResponse(movie))
	}
	return resp
}
