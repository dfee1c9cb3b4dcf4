package wire

import (
	"context"
	"errors"
	"sort"
	"sync"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/apperror"
)

// memStore is an in-memory stand-in for the Postgres repositories. It has the
// same observable behaviour: ids start at 1, lists are ordered by id, and
// update/delete of a missing row is NotFound.
type memStore struct {
	mu        sync.Mutex
	movies    map[int64]entity.Movie
	directors map[int64]entity.Director
	genres    map[int64]entity.Genre
	nextID    map[string]int64
	pingErr   error
}

func newMemStore() *memStore {
	return &memStore{
		movies:    map[int64]entity.Movie{},
		directors: map[int64]entity.Director{},
		genres:    map[int64]entity.Genre{},
		nextID:    map[string]int64{},
	}
}

func (s *memStore) repository() *repository.Repository {
	return &repository.Repository{
		Movie:    memMovies{s},
		Director: memDirectors{s},
		Genre:    memGenres{s},
	}
}

func (s *memStore) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s *memStore) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

var errClosed = errors.New("store closed")

type memMovies struct{ s *memStore }

func (r memMovies) Create(ctx context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	movie.ID = r.s.id("movie")
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r memMovies) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	movie, ok := r.s.movies[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (r memMovies) FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.pingErr != nil {
		return nil, apperror.Internal("failed to list movie", errClosed)
	}

	movies := []*entity.Movie{}
	for _, id := range sortedIDs(r.s.movies) {
		movie := r.s.movies[id]
		if filter.DirectorID != nil && (movie.DirectorID == nil || *movie.DirectorID != *filter.DirectorID) {
			continue
		}
		if filter.GenreID != nil && (movie.GenreID == nil || *movie.GenreID != *filter.GenreID) {
			continue
		}
		movies = append(movies, &movie)
	}
	return movies, nil
}

func (r memMovies) Update(ctx context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movies[movie.ID]; !ok {
		return apperror.NotFound("movie %d not found", movie.ID)
	}
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r memMovies) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movies[id]; !ok {
		return apperror.NotFound("movie %d not found", id)
	}
	delete(r.s.movies, id)
	return nil
}

type memDirectors struct{ s *memStore }

func (r memDirectors) Create(ctx context.Context, director *entity.Director) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	director.ID = r.s.id("director")
	r.s.directors[director.ID] = *director
	return nil
}

func (r memDirectors) FindByID(ctx context.Context, id int64) (*entity.Director, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	director, ok := r.s.directors[id]
	if !ok {
		return nil, nil
	}
	return &director, nil
}

func (r memDirectors) FindAll(ctx context.Context) ([]*entity.Director, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	directors := []*entity.Director{}
	for _, id := range sortedIDs(r.s.directors) {
		director := r.s.directors[id]
		directors = append(directors, &director)
	}
	return directors, nil
}

func (r memDirectors) Update(ctx context.Context, director *entity.Director) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.directors[director.ID]; !ok {
		return apperror.NotFound("director %d not found", director.ID)
	}
	r.s.directors[director.ID] = *director
	return nil
}

func (r memDirectors) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.directors[id]; !ok {
		return apperror.NotFound("director %d not found", id)
	}
	delete(r.s.directors, id)
	return nil
}

type memGenres struct{ s *memStore }

func (r memGenres) Create(ctx context.Context, genre *entity.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	genre.ID = r.s.id("genre")
	r.s.genres[genre.ID] = *genre
	return nil
}

func (r memGenres) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	genre, ok := r.s.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}

func (r memGenres) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	genres := []*entity.Genre{}
	for _, id := range sortedIDs(r.s.genres) {
		genre := r.s.genres[id]
		genres = append(genres, &genre)
	}
	return genres, nil
}

func (r memGenres) Update(ctx context.Context, genre *entity.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.genres[genre.ID]; !ok {
		return apperror.NotFound("genre %d not found", genre.ID)
	}
	r.s.genres[genre.ID] = *genre
	return nil
}

func (r memGenres) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.genres[id]; !ok {
		return apperror.NotFound("genre %d not found", id)
	}
	delete(r.s.genres, id)
	return nil
}
