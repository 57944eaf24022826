package sessions

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"
)

type Storage interface {
	List(ctx context.Context, f filters.SessionFilters) ([]models.SessionListItem, error)
	Get(ctx context.Context, id int64) (*models.SessionDetail, error)
	Insert(ctx context.Context, showTime time.Time, movieID, cinemaHallID int64) (*models.MovieSession, error)
	Update(ctx context.Context, session *models.MovieSession) (*models.MovieSession, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	log     *slog.Logger
	storage Storage
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:     log,
		storage: storage,
	}
}

func (s *Service) List(ctx context.Context, f filters.SessionFilters) ([]models.SessionListItem, error) {
	const op = "sessions.Service.List"
	sessions, err := s.storage.List(ctx, f)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return sessions, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.SessionDetail, error) {
	const op = "sessions.Service.Get"
	log := s.log.With("op", op, "id", id)
	session, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie session not found")
			return nil, ErrSessionNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return session, nil
}

func (s *Service) Create(ctx context.Context, showTime time.Time, movieID, cinemaHallID int64) (*models.MovieSession, error) {
	const op = "sessions.Service.Create"
	log := s.log.With("op", op, "movie_id", movieID, "cinema_hall_id", cinemaHallID)
	session, err := s.storage.Insert(ctx, showTime, movieID, cinemaHallID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("session references unknown movie or hall")
			return nil, ErrUnknownReference
		}
		log.Error(err.Error())
		return nil, err
	}
	return session, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	showTime *time.Time,
	movieID, cinemaHallID int64,
) (*models.MovieSession, error) {
	const op = "sessions.Service.Update"
	log := s.log.With("op", op, "id", id)
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session := &models.MovieSession{
		ID:           detail.ID,
		ShowTime:     detail.ShowTime,
		MovieID:      detail.Movie.ID,
		CinemaHallID: detail.CinemaHall.ID,
	}
	if showTime != nil {
		session.ShowTime = *showTime
	}
	if movieID != 0 {
		session.MovieID = movieID
	}
	if cinemaHallID != 0 {
		session.CinemaHallID = cinemaHallID
	}
	updated, err := s.storage.Update(ctx, session)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("session or one of its references not found")
			return nil, ErrUnknownReference
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

// Delete rejects sessions that already have booked tickets.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "sessions.Service.Delete"
	log := s.log.With("op", op, "id", id)
	if err := s.storage.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("movie session not found")
			return ErrSessionNotFound
		case errors.Is(err, storage.ErrReferenced):
			log.Info("movie session has booked tickets")
			return ErrSessionHasTickets
		}
		log.Error(err.Error())
		return err
	}
	return nil
}
