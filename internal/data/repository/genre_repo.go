package repository

import (
	"context"
	"errors"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/apperror"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindByID(ctx context.Context, id int64) (*entity.Genre, error)
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	Update(ctx context.Context, genre *entity.Genre) error
	Delete(ctx context.Context, id int64) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	query := `INSERT INTO genre (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, genre.Name).Scan(&genre.ID); err != nil {
		r.log.Error("Failed to create genre", zap.Error(err), zap.String("name", genre.Name))
		return storeError("genre", "create", err)
	}

	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	query := `SELECT id, name FROM genre WHERE id = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return nil, storeError("genre", "find", err)
	}

	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genre ORDER BY id ASC`)
	if err != nil {
		r.log.Error("Failed to find genres", zap.Error(err))
		return nil, storeError("genre", "list", err)
	}
	defer rows.Close()

	genres := []*entity.Genre{}
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, storeError("genre", "scan", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, storeError("genre", "list", err)
	}

	return genres, nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	result, err := r.db.Exec(ctx, `UPDATE genre SET name = $2 WHERE id = $1`, genre.ID, genre.Name)
	if err != nil {
		r.log.Error("Failed to update genre", zap.Error(err), zap.Int64("genre_id", genre.ID))
		return storeError("genre", "update", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("genre %d not found", genre.ID)
	}

	return nil
}

// Delete removes the genre only; movies referencing it keep their genre_id.
func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM genre WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete genre", zap.Error(err), zap.Int64("genre_id", id))
		return storeError("genre", "delete", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("genre %d not found", id)
	}

	r.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}
