package usecase

import (
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Director DirectorService
	Genre    GenreService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Director: NewDirectorService(repo.Director, log),
		Genre:    NewGenreService(repo, log),
	}
}
