package response

import "movie-catalog/internal/data/entity"

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Helper converter
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	resp := make([]GenreResponse, 0, len(genres))
	for _, genre := range genres {
		resp = append(resp, GenreToResponse(genre))
	}
	return resp
}
