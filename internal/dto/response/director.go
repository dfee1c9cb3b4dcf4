package response

import "movie-catalog/internal/data/entity"

type DirectorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func DirectorToResponse(director *entity.Director) DirectorResponse {
	return DirectorResponse{
		ID:   director.ID,
		Name: director.Name,
	}
}

func DirectorsToResponse(directors []*entity.Director) []DirectorResponse {
	resp := make([]DirectorResponse, 0, len(directors))
	for _, director := range directors {
		resp = append(resp, DirectorToResponse(director))
	}
	return resp
}
