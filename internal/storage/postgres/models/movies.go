package models

import (
	"context"
	"errors"

	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"
	"cinema/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieModel struct {
	DB *pgxpool.Pool
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so detail fetch
// helpers can run inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (m *MovieModel) List(ctx context.Context, f filters.MovieFilters) ([]models.MovieListItem, error) {
	actors := f.Actors
	if actors == nil {
		actors = []int64{}
	}
	genres := f.Genres
	if genres == nil {
		genres = []int64{}
	}
	rows, _ := m.DB.Query(
		ctx,
		`SELECT m.id, m.title, m.description, m.duration,
			coalesce(array_agg(DISTINCT g.name) FILTER (WHERE g.id IS NOT NULL), '{}') AS genres,
			coalesce(array_agg(DISTINCT a.first_name || ' ' || a.last_name) FILTER (WHERE a.id IS NOT NULL), '{}') AS actors
		FROM movies m
		LEFT JOIN movie_genres mg ON mg.movie_id = m.id
		LEFT JOIN genres g ON g.id = mg.genre_id
		LEFT JOIN movie_actors ma ON ma.movie_id = m.id
		LEFT JOIN actors a ON a.id = ma.actor_id
		WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%')
		AND (cardinality($2::bigint[]) = 0 OR m.id IN (SELECT movie_id FROM movie_actors WHERE actor_id = ANY($2)))
		AND (cardinality($3::bigint[]) = 0 OR m.id IN (SELECT movie_id FROM movie_genres WHERE genre_id = ANY($3)))
		GROUP BY m.id
		ORDER BY m.id ASC`,
		f.Title,
		actors,
		genres,
	)
	movies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MovieListItem])
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (m *MovieModel) Get(ctx context.Context, id int64) (*models.MovieDetail, error) {
	return fetchMovieDetail(ctx, m.DB, id)
}

func (m *MovieModel) Insert(
	ctx context.Context,
	title, description string,
	duration int32,
	genreIDs, actorIDs []int64,
) (*models.MovieDetail, error) {
	tx, err := m.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(
		ctx,
		"INSERT INTO movies (title, description, duration) VALUES ($1, $2, $3) RETURNING id",
		title,
		description,
		duration,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	if err := insertMovieRelations(ctx, tx, id, genreIDs, actorIDs); err != nil {
		return nil, err
	}
	movie, err := fetchMovieDetail(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return movie, nil
}

// Update rewrites the whole movie row; nil id slices leave the relations as is.
func (m *MovieModel) Update(ctx context.Context, movie *models.Movie, genreIDs, actorIDs []int64) (*models.MovieDetail, error) {
	tx, err := m.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	status, err := tx.Exec(
		ctx,
		"UPDATE movies SET title = $1, description = $2, duration = $3 WHERE id = $4",
		movie.Title,
		movie.Description,
		movie.Duration,
		movie.ID,
	)
	if err != nil {
		return nil, err
	}
	if status.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}
	if genreIDs != nil {
		if _, err := tx.Exec(ctx, "DELETE FROM movie_genres WHERE movie_id = $1", movie.ID); err != nil {
			return nil, err
		}
	}
	if actorIDs != nil {
		if _, err := tx.Exec(ctx, "DELETE FROM movie_actors WHERE movie_id = $1", movie.ID); err != nil {
			return nil, err
		}
	}
	if err := insertMovieRelations(ctx, tx, movie.ID, genreIDs, actorIDs); err != nil {
		return nil, err
	}
	updated, err := fetchMovieDetail(ctx, tx, movie.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func (m *MovieModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM movies WHERE id = $1", id)
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

func insertMovieRelations(ctx context.Context, tx pgx.Tx, movieID int64, genreIDs, actorIDs []int64) error {
	for _, genreID := range genreIDs {
		if _, err := tx.Exec(
			ctx,
			"INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)",
			movieID,
			genreID,
		); err != nil {
			return relationInsertErr(err)
		}
	}
	for _, actorID := range actorIDs {
		if _, err := tx.Exec(
			ctx,
			"INSERT INTO movie_actors (movie_id, actor_id) VALUES ($1, $2)",
			movieID,
			actorID,
		); err != nil {
			return relationInsertErr(err)
		}
	}
	return nil
}

func relationInsertErr(err error) error {
	var pgxErr *pgconn.PgError
	switch {
	case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrForeignKeyCode:
		// unknown genre/actor id
		return storage.ErrNotFound
	case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode:
		// duplicate id in the request
		return storage.ErrConflict
	}
	return err
}

func fetchMovieDetail(ctx context.Context, q querier, id int64) (*models.MovieDetail, error) {
	rows, err := q.Query(ctx, "SELECT id, title, description, duration FROM movies WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	rows, _ = q.Query(
		ctx,
		`SELECT g.id, g.name FROM genres g
		JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = $1 ORDER BY g.id ASC`,
		id,
	)
	genres, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		return nil, err
	}

	rows, _ = q.Query(
		ctx,
		`SELECT a.id, a.first_name, a.last_name FROM actors a
		JOIN movie_actors ma ON ma.actor_id = a.id
		WHERE ma.movie_id = $1 ORDER BY a.id ASC`,
		id,
	)
	actors, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, err
	}

	return &models.MovieDetail{Movie: movie, Genres: genres, Actors: actors}, nil
}
