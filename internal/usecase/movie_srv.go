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

const (
	MsgNoMoviesMatched = "Sorry, nothing matched your query"
	MsgMovieNotFound   = "Sorry, no movie with this ID was found"
)

type MovieService interface {
	GetMovies(ctx context.Context, query request.MovieListQuery) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (int64, error)
	UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) error
	DeleteMovie(ctx context.Context, id int64) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// GetMovies lists movies matching every set filter. An empty result is NotFound.
func (s *movieService) GetMovies(ctx context.Context, query request.MovieListQuery) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, entity.MovieFilter{
		DirectorID: query.DirectorID,
		GenreID:    query.GenreID,
	})
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	if len(movies) == 0 {
		s.log.Info("No movies matched",
			zap.Int64p("director_id", query.DirectorID),
			zap.Int64p("genre_id", query.GenreID),
		)
		return nil, apperror.NotFound(MsgNoMoviesMatched)
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, apperror.NotFound(MsgMovieNotFound)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// CreateMovie stores the payload as a new row and returns the assigned id.
func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return 0, apperror.ValidationFields("Validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	if err := s.checkReferences(ctx, req); err != nil {
		return 0, err
	}

	movie := movieFromRequest(req)
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return 0, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.Stringp("title", movie.Title),
	)

	return movie.ID, nil
}

// UpdateMovie replaces every writable field; fields missing from req become NULL.
func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *request.MovieRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs), zap.Int64("movie_id", id))
		return apperror.ValidationFields("Validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	existing, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if existing == nil {
		return apperror.NotFound(MsgMovieNotFound)
	}

	if err := s.checkReferences(ctx, req); err != nil {
		return err
	}

	movie := movieFromRequest(req)
	movie.ID = id

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", id),
		zap.Stringp("title", movie.Title),
	)

	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound(MsgMovieNotFound)
		}
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

// checkReferences rejects a genre_id or director_id that names no existing row.
func (s *movieService) checkReferences(ctx context.Context, req *request.MovieRequest) error {
	if req.GenreID != nil {
		genre, err := s.repo.Genre.FindByID(ctx, *req.GenreID)
		if err != nil {
			return fmt.Errorf("check genre: %w", err)
		}
		if genre == nil {
			return apperror.Validation("genre not found: %d", *req.GenreID)
		}
	}

	if req.DirectorID != nil {
		director, err := s.repo.Director.FindByID(ctx, *req.DirectorID)
		if err != nil {
			return fmt.Errorf("check director: %w", err)
		}
		if director == nil {
			return apperror.Validation("director not found: %d", *req.DirectorID)
		}
	}

	return nil
}

func movieFromRequest(req *request.MovieRequest) *entity.Movie {
	return &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		Trailer:     req.Trailer,
		Year:        req.Year,
		Rating:      req.Rating,
		GenreID:     req.GenreID,
		DirectorID:  req.DirectorID,
	}
}
