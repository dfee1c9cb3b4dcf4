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

type DirectorRepository interface {
	Create(ctx context.Context, director *entity.Director) error
	FindByID(ctx context.Context, id int64) (*entity.Director, error)
	FindAll(ctx context.Context) ([]*entity.Director, error)
	Update(ctx context.Context, director *entity.Director) error
	Delete(ctx context.Context, id int64) error
}

type directorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDirectorRepository(db database.PgxIface, log *zap.Logger) DirectorRepository {
	return &directorRepository{
		db:  db,
		log: log.With(zap.String("repository", "director")),
	}
}

func (r *directorRepository) Create(ctx context.Context, director *entity.Director) error {
	query := `INSERT INTO director (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, director.Name).Scan(&director.ID); err != nil {
		r.log.Error("Failed to create director", zap.Error(err), zap.String("name", director.Name))
		return storeError("director", "create", err)
	}

	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id int64) (*entity.Director, error) {
	query := `SELECT id, name FROM director WHERE id = $1`

	var director entity.Director
	err := r.db.QueryRow(ctx, query, id).Scan(
		&director.ID,
		&director.Name,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.Int64("director_id", id),
		)
		return nil, storeError("director", "find", err)
	}

	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM director ORDER BY id ASC`)
	if err != nil {
		r.log.Error("Failed to find directors", zap.Error(err))
		return nil, storeError("director", "list", err)
	}
	defer rows.Close()

	directors := []*entity.Director{}
	for rows.Next() {
		var director entity.Director
		if err := rows.Scan(&director.ID, &director.Name); err != nil {
			r.log.Error("Failed to scan director row", zap.Error(err))
			return nil, storeError("director", "scan", err)
		}
		directors = append(directors, &director)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, storeError("director", "list", err)
	}

	return directors, nil
}

func (r *directorRepository) Update(ctx context.Context, director *entity.Director) error {
	result, err := r.db.Exec(ctx, `UPDATE director SET name = $2 WHERE id = $1`, director.ID, director.Name)
	if err != nil {
		r.log.Error("Failed to update director", zap.Error(err), zap.Int64("director_id", director.ID))
		return storeError("director", "update", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("director %d not found", director.ID)
	}

	return nil
}

// Delete removes the director only; movies referencing it keep their director_id.
func (r *directorRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM director WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete director", zap.Error(err), zap.Int64("director_id", id))
		return storeError("director", "delete", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("director %d not found", id)
	}

	r.log.Info("Director deleted", zap.Int64("director_id", id))
	return nil
}
