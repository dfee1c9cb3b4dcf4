package adaptor

import (
	"movie-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Director *DirectorHandler
	Genre    *GenreHandler
	Health   *HealthHandler
}

func NewHandler(service *usecase.Service, store Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Director: NewDirectorHandler(service.Director, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Health:   NewHealthHandler(store, log),
	}
}
