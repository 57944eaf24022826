package models

import (
	"context"
	"errors"

	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActorModel struct {
	DB *pgxpool.Pool
}

func (m *ActorModel) Get(ctx context.Context, id int64) (*models.Actor, error) {
	rows, err := m.DB.Query(ctx, "SELECT id, first_name, last_name FROM actors WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	actor, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

func (m *ActorModel) List(ctx context.Context) ([]models.Actor, error) {
	rows, _ := m.DB.Query(ctx, "SELECT id, first_name, last_name FROM actors ORDER BY id ASC")
	actors, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, err
	}
	return actors, nil
}

func (m *ActorModel) Insert(ctx context.Context, firstName, lastName string) (*models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO actors (first_name, last_name) VALUES ($1, $2) RETURNING id, first_name, last_name",
		firstName,
		lastName,
	)
	actor, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

func (m *ActorModel) Update(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE actors SET first_name = $1, last_name = $2 WHERE id = $3
		RETURNING id, first_name, last_name`,
		actor.FirstName,
		actor.LastName,
		actor.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *ActorModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM actors WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
