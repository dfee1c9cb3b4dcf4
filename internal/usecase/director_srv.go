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

const MsgDirectorNotFound = "Sorry, no director with this ID was found"

type DirectorService interface {
	GetDirectors(ctx context.Context) ([]response.DirectorResponse, error)
	GetDirectorByID(ctx context.Context, id int64) (*response.DirectorResponse, error)
	CreateDirector(ctx context.Context, req *request.DirectorRequest) (int64, error)
	UpdateDirector(ctx context.Context, id int64, req *request.DirectorRequest) error
	DeleteDirector(ctx context.Context, id int64) error
}

type directorService struct {
	repo repository.DirectorRepository
	log  *zap.Logger
}

func NewDirectorService(repo repository.DirectorRepository, log *zap.Logger) DirectorService {
	return &directorService{
		repo: repo,
		log:  log.With(zap.String("service", "director")),
	}
}

// GetDirectors returns every director; an empty list is a valid result.
func (s *directorService) GetDirectors(ctx context.Context) ([]response.DirectorResponse, error) {
	directors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get directors: %w", err)
	}

	return response.DirectorsToResponse(directors), nil
}

func (s *directorService) GetDirectorByID(ctx context.Context, id int64) (*response.DirectorResponse, error) {
	director, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get director by id: %w", err)
	}
	if director == nil {
		return nil, apperror.NotFound(MsgDirectorNotFound)
	}

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) CreateDirector(ctx context.Context, req *request.DirectorRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create director validation failed", zap.Any("errors", errs))
		return 0, apperror.ValidationFields("Validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	director := &entity.Director{Name: req.Name}
	if err := s.repo.Create(ctx, director); err != nil {
		return 0, fmt.Errorf("create director: %w", err)
	}

	s.log.Info("Director created",
		zap.Int64("director_id", director.ID),
		zap.String("name", director.Name),
	)

	return director.ID, nil
}

func (s *directorService) UpdateDirector(ctx context.Context, id int64, req *request.DirectorRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update director validation failed", zap.Any("errors", errs), zap.Int64("director_id", id))
		return apperror.ValidationFields("Validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	director := &entity.Director{Base: entity.Base{ID: id}, Name: req.Name}
	if err := s.repo.Update(ctx, director); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound(MsgDirectorNotFound)
		}
		return fmt.Errorf("update director: %w", err)
	}

	s.log.Info("Director updated", zap.Int64("director_id", id))
	return nil
}

// DeleteDirector does not touch movies that still reference the director.
func (s *directorService) DeleteDirector(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound(MsgDirectorNotFound)
		}
		return fmt.Errorf("delete director: %w", err)
	}

	s.log.Info("Director deleted", zap.Int64("director_id", id))
	return nil
}
