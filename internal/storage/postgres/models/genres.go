package models

import (
	"context"
	"errors"

	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"
	"cinema/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GenreModel struct {
	DB *pgxpool.Pool
}

func (m *GenreModel) Get(ctx context.Context, id int64) (*models.Genre, error) {
	rows, err := m.DB.Query(ctx, "SELECT id, name FROM genres WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	genre, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (m *GenreModel) List(ctx context.Context) ([]models.Genre, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, name FROM genres ORDER BY id ASC")
	genres, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		return nil, err
	}
	return genres, nil
}

func (m *GenreModel) Insert(ctx context.Context, name string) (*models.Genre, error) {
	rows, _ := m.DB.Query(ctx, "INSERT INTO genres (name) VALUES ($1) RETURNING id, name", name)
	genre, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return &genre, nil
}

func (m *GenreModel) Update(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE genres SET name = $1 WHERE id = $2 RETURNING id, name",
		genre.Name,
		genre.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		var pgxErr *pgconn.PgError
		switch {
		case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode:
			return nil, storage.ErrConflict
		case errors.Is(err, pgx.ErrNoRows):
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *GenreModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM genres WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
