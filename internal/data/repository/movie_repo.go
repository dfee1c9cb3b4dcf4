package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/apperror"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

const movieColumns = `id, title, description, trailer, year, rating, genre_id, director_id`

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// Create inserts the movie and stores the generated id on it.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movie (title, description, trailer, year, rating, genre_id, director_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.Trailer,
		movie.Year,
		movie.Rating,
		movie.GenreID,
		movie.DirectorID,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie", zap.Error(err), zap.Stringp("title", movie.Title))
		return storeError("movie", "create", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movie WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID", zap.Error(err), zap.Int64("movie_id", id))
		return nil, storeError("movie", "find", err)
	}

	return movie, nil
}

// FindAll returns the movies matching filter ordered by id.
func (r *movieRepository) FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + movieColumns + ` FROM movie WHERE TRUE`)

	args := []any{}

	if filter.DirectorID != nil {
		args = append(args, *filter.DirectorID)
		queryBuilder.WriteString(fmt.Sprintf(" AND director_id = $%d", len(args)))
	}

	if filter.GenreID != nil {
		args = append(args, *filter.GenreID)
		queryBuilder.WriteString(fmt.Sprintf(" AND genre_id = $%d", len(args)))
	}

	queryBuilder.WriteString(" ORDER BY id ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int64p("director_id", filter.DirectorID),
			zap.Int64p("genre_id", filter.GenreID),
		)
		return nil, storeError("movie", "list", err)
	}
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, storeError("movie", "scan", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, storeError("movie", "list", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

// Update overwrites every writable column of the row with movie.ID.
func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movie
		SET title = $2, description = $3, trailer = $4, year = $5,
		    rating = $6, genre_id = $7, director_id = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Trailer,
		movie.Year,
		movie.Rating,
		movie.GenreID,
		movie.DirectorID,
	)
	if err != nil {
		r.log.Error("Failed to update movie", zap.Error(err), zap.Int64("movie_id", movie.ID))
		return storeError("movie", "update", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("movie %d not found", movie.ID)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movie WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie", zap.Error(err), zap.Int64("movie_id", id))
		return storeError("movie", "delete", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("movie %d not found", id)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Trailer,
		&movie.Year,
		&movie.Rating,
		&movie.GenreID,
		&movie.DirectorID,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
