package models

import (
	"context"
	"errors"
	"time"

	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"
	"cinema/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionModel struct {
	DB *pgxpool.Pool
}

// List computes tickets_available in a single aggregate query to avoid
// an extra count per session.
func (m *SessionModel) List(ctx context.Context, f filters.SessionFilters) ([]models.SessionListItem, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT s.id, s.show_time, mv.title AS movie_title, h.name AS cinema_hall_name,
			(h."rows" * h.seats_in_row)::int AS cinema_hall_capacity,
			(h."rows" * h.seats_in_row - count(t.id))::int AS tickets_available
		FROM movie_sessions s
		JOIN movies mv ON mv.id = s.movie_id
		JOIN cinema_halls h ON h.id = s.cinema_hall_id
		LEFT JOIN tickets t ON t.movie_session_id = s.id
		WHERE ($1::date IS NULL OR s.show_time::date = $1)
		AND ($2::bigint IS NULL OR s.movie_id = $2)
		GROUP BY s.id, s.show_time, mv.title, h.name, h."rows", h.seats_in_row
		ORDER BY s.id ASC`,
		f.Date,
		f.MovieID,
	)
	sessions, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SessionListItem])
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (m *SessionModel) Get(ctx context.Context, id int64) (*models.SessionDetail, error) {
	session, err := m.get(ctx, id)
	if err != nil {
		return nil, err
	}
	movie, err := fetchMovieDetail(ctx, m.DB, session.MovieID)
	if err != nil {
		return nil, err
	}
	rows, err := m.DB.Query(
		ctx,
		`SELECT id, name, "rows", seats_in_row FROM cinema_halls WHERE id = $1`,
		session.CinemaHallID,
	)
	if err != nil {
		return nil, err
	}
	hall, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CinemaHall])
	if err != nil {
		return nil, err
	}
	rows, _ = m.DB.Query(
		ctx,
		`SELECT "row", seat FROM tickets WHERE movie_session_id = $1 ORDER BY "row" ASC, seat ASC`,
		id,
	)
	takenPlaces, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Place])
	if err != nil {
		return nil, err
	}
	return &models.SessionDetail{
		ID:          session.ID,
		ShowTime:    session.ShowTime,
		Movie:       *movie,
		CinemaHall:  hall,
		TakenPlaces: takenPlaces,
	}, nil
}

func (m *SessionModel) get(ctx context.Context, id int64) (*models.MovieSession, error) {
	rows, err := m.DB.Query(
		ctx,
		"SELECT id, show_time, movie_id, cinema_hall_id FROM movie_sessions WHERE id = $1",
		id,
	)
	if err != nil {
		return nil, err
	}
	session, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MovieSession])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (m *SessionModel) Insert(ctx context.Context, showTime time.Time, movieID, cinemaHallID int64) (*models.MovieSession, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO movie_sessions (show_time, movie_id, cinema_hall_id) VALUES ($1, $2, $3)
		RETURNING id, show_time, movie_id, cinema_hall_id`,
		showTime,
		movieID,
		cinemaHallID,
	)
	session, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MovieSession])
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrForeignKeyCode {
			// unknown movie or hall id
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (m *SessionModel) Update(ctx context.Context, session *models.MovieSession) (*models.MovieSession, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE movie_sessions SET show_time = $1, movie_id = $2, cinema_hall_id = $3 WHERE id = $4
		RETURNING id, show_time, movie_id, cinema_hall_id`,
		session.ShowTime,
		session.MovieID,
		session.CinemaHallID,
		session.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MovieSession])
	if err != nil {
		var pgxErr *pgconn.PgError
		switch {
		case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrForeignKeyCode:
			return nil, storage.ErrNotFound
		case errors.Is(err, pgx.ErrNoRows):
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete rejects sessions that are referenced by sold tickets (FK RESTRICT).
func (m *SessionModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM movie_sessions WHERE id = $1", id)
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
