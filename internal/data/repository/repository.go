package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie    MovieRepository
	Director DirectorRepository
	Genre    GenreRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Director: NewDirectorRepository(db, log),
		Genre:    NewGenreRepository(db, log),
	}
}
