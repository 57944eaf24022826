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

type CinemaHallModel struct {
	DB *pgxpool.Pool
}

func (m *CinemaHallModel) Get(ctx context.Context, id int64) (*models.CinemaHall, error) {
	rows, err := m.DB.Query(
		ctx,
		`SELECT id, name, "rows", seats_in_row FROM cinema_halls WHERE id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	hall, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CinemaHall])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &hall, nil
}

func (m *CinemaHallModel) List(ctx context.Context) ([]models.CinemaHall, error) {
	rows, _ := m.DB.Query(ctx, `SELECT id, name, "rows", seats_in_row FROM cinema_halls ORDER BY id ASC`)
	halls, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CinemaHall])
	if err != nil {
		return nil, err
	}
	return halls, nil
}

func (m *CinemaHallModel) Insert(ctx context.Context, name string, hallRows, seatsInRow int32) (*models.CinemaHall, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO cinema_halls (name, "rows", seats_in_row) VALUES ($1, $2, $3)
		RETURNING id, name, "rows", seats_in_row`,
		name,
		hallRows,
		seatsInRow,
	)
	hall, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CinemaHall])
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (m *CinemaHallModel) Update(ctx context.Context, hall *models.CinemaHall) (*models.CinemaHall, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE cinema_halls SET name = $1, "rows" = $2, seats_in_row = $3 WHERE id = $4
		RETURNING id, name, "rows", seats_in_row`,
		hall.Name,
		hall.Rows,
		hall.SeatsInRow,
		hall.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CinemaHall])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *CinemaHallModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM cinema_halls WHERE id = $1", id)
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrForeignKeyCode {
			return storage.ErrReferenced
		}
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
