package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type mockMovieRepository struct {
	mock.Mock
}

func (m *mockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *mockMovieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieRepository) FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	args := m.Called(ctx, filter)
	movies, _ := args.Get(0).([]*entity.Movie)
	return movies, args.Error(1)
}

func (m *mockMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *mockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDirectorRepository struct {
	mock.Mock
}

func (m *mockDirectorRepository) Create(ctx context.Context, director *entity.Director) error {
	args := m.Called(ctx, director)
	return args.Error(0)
}

func (m *mockDirectorRepository) FindByID(ctx context.Context, id int64) (*entity.Director, error) {
	args := m.Called(ctx, id)
	director, _ := args.Get(0).(*entity.Director)
	return director, args.Error(1)
}

func (m *mockDirectorRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	args := m.Called(ctx)
	directors, _ := args.Get(0).([]*entity.Director)
	return directors, args.Error(1)
}

func (m *mockDirectorRepository) Update(ctx context.Context, director *entity.Director) error {
	args := m.Called(ctx, director)
	return args.Error(0)
}

func (m *mockDirectorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockGenreRepository struct {
	mock.Mock
}

func (m *mockGenreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *mockGenreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	args := m.Called(ctx, id)
	genre, _ := args.Get(0).(*entity.Genre)
	return genre, args.Error(1)
}

func (m *mockGenreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]*entity.Genre)
	return genres, args.Error(1)
}

func (m *mockGenreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *mockGenreRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func ptr[T any](v T) *T {
	return &v
}
