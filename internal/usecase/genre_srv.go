package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/apperror"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

const MsgGenreNotFound = "Sorry, no genre with this ID was found"

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreMovies(ctx context.Context, id int64) ([]response.MovieResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (int64, error)
	UpdateGenre(ctx context.Context, id int64, req *request.GenreRequest) error
	DeleteGenre(ctx context.Context, id int64) error
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	return response.GenresToResponse(genres), nil
}

// GetGenreMovies backs GET /genres/{id}. It answers with the movies of the
// genre rather than the genre record itself; clients depend on that shape,
// so it is kept even though it differs from the director item endpoint.
// A genre without movies yields an empty list, not NotFound.
func (s *genreService) GetGenreMovies(ctx context.Context, id int64) ([]response.MovieResponse, error) {
	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get genre by id: %w", err)
	}
	if genre == nil {
		return nil, apperror.NotFound(MsgGenreNotFound)
	}

	movies, err := s.repo.Movie.FindAll(ctx, entity.MovieFilter{GenreID: &genre.ID})
	if err != nil {
		return nil, fmt.Errorf("get movies of genre: %w", err)
	}

	s.log.Debug("Genre movies retrieved",
		zap.Int64("genre_id", id),
		zap.String("name", genre.Name),
		zap.Int("count", len(movies)),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return 0, apperror.ValidationFields("Validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	genre := &entity.Genre{Name: req.Name}
	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		return 0, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created",
		zap.Int64("genre_id", genre.ID),
		zap.String("name", genre.Name),
	)

	return genre.ID, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, id int64, req *request.GenreRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update genre validation failed", zap.Any("errors", errs), zap.Int64("genre_id", id))
		return apperror.ValidationFields("Validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	genre := &entity.Genre{Base: entity.Base{ID: id}, Name: req.Name}
	if err := s.repo.Genre.Update(ctx, genre); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound(MsgGenreNotFound)
		}
		return fmt.Errorf("update genre: %w", err)
	}

	s.log.Info("Genre updated", zap.Int64("genre_id", id))
	return nil
}

// DeleteGenre leaves movies of the genre in place with a dangling genre_id.
func (s *genreService) DeleteGenre(ctx context.Context, id int64) error {
	if err := s.repo.Genre.Delete(ctx, id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound(MsgGenreNotFound)
		}
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}
