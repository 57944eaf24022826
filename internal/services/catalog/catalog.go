package catalog

import (
	"context"
	"errors"
	"log/slog"

	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"
)

type GenresStorage interface {
	Get(ctx context.Context, id int64) (*models.Genre, error)
	List(ctx context.Context) ([]models.Genre, error)
	Insert(ctx context.Context, name string) (*models.Genre, error)
	Update(ctx context.Context, genre *models.Genre) (*models.Genre, error)
	Delete(ctx context.Context, id int64) error
}

type ActorsStorage interface {
	Get(ctx context.Context, id int64) (*models.Actor, error)
	List(ctx context.Context) ([]models.Actor, error)
	Insert(ctx context.Context, firstName, lastName string) (*models.Actor, error)
	Update(ctx context.Context, actor *models.Actor) (*models.Actor, error)
	Delete(ctx context.Context, id int64) error
}

type HallsStorage interface {
	Get(ctx context.Context, id int64) (*models.CinemaHall, error)
	List(ctx context.Context) ([]models.CinemaHall, error)
	Insert(ctx context.Context, name string, rows, seatsInRow int32) (*models.CinemaHall, error)
	Update(ctx context.Context, hall *models.CinemaHall) (*models.CinemaHall, error)
	Delete(ctx context.Context, id int64) error
}

type MoviesStorage interface {
	Get(ctx context.Context, id int64) (*models.MovieDetail, error)
	List(ctx context.Context, f filters.MovieFilters) ([]models.MovieListItem, error)
	Insert(ctx context.Context, title, description string, duration int32, genreIDs, actorIDs []int64) (*models.MovieDetail, error)
	Update(ctx context.Context, movie *models.Movie, genreIDs, actorIDs []int64) (*models.MovieDetail, error)
	Delete(ctx context.Context, id int64) error
}

// Service covers the whole reference catalog: genres, actors, halls and movies.
type Service struct {
	log    *slog.Logger
	genres GenresStorage
	actors ActorsStorage
	halls  HallsStorage
	movies MoviesStorage
}

func New(log *slog.Logger, genres GenresStorage, actors ActorsStorage, halls HallsStorage, movies MoviesStorage) *Service {
	return &Service{
		log:    log,
		genres: genres,
		actors: actors,
		halls:  halls,
		movies: movies,
	}
}

func (s *Service) GetGenre(ctx context.Context, id int64) (*models.Genre, error) {
	const op = "catalog.Service.GetGenre"
	log := s.log.With("op", op, "id", id)
	genre, err := s.genres.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("genre not found")
			return nil, ErrGenreNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return genre, nil
}

func (s *Service) ListGenres(ctx context.Context) ([]models.Genre, error) {
	const op = "catalog.Service.ListGenres"
	genres, err := s.genres.List(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return genres, nil
}

func (s *Service) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	const op = "catalog.Service.CreateGenre"
	log := s.log.With("op", op, "name", name)
	genre, err := s.genres.Insert(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("genre already exists")
			return nil, ErrGenreExists
		}
		log.Error(err.Error())
		return nil, err
	}
	return genre, nil
}

func (s *Service) UpdateGenre(ctx context.Context, id int64, name string) (*models.Genre, error) {
	const op = "catalog.Service.UpdateGenre"
	log := s.log.With("op", op, "id", id, "name", name)
	genre, err := s.GetGenre(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		genre.Name = name
	}
	updated, err := s.genres.Update(ctx, genre)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("genre already exists")
			return nil, ErrGenreExists
		case errors.Is(err, storage.ErrNotFound):
			log.Info("genre not found")
			return nil, ErrGenreNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteGenre(ctx context.Context, id int64) error {
	const op = "catalog.Service.DeleteGenre"
	if err := s.genres.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrGenreNotFound
		}
		s.log.With("op", op, "id", id).Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) GetActor(ctx context.Context, id int64) (*models.Actor, error) {
	const op = "catalog.Service.GetActor"
	log := s.log.With("op", op, "id", id)
	actor, err := s.actors.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("actor not found")
			return nil, ErrActorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return actor, nil
}

func (s *Service) ListActors(ctx context.Context) ([]models.Actor, error) {
	const op = "catalog.Service.ListActors"
	actors, err := s.actors.List(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return actors, nil
}

func (s *Service) CreateActor(ctx context.Context, firstName, lastName string) (*models.Actor, error) {
	const op = "catalog.Service.CreateActor"
	actor, err := s.actors.Insert(ctx, firstName, lastName)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return actor, nil
}

func (s *Service) UpdateActor(ctx context.Context, id int64, firstName, lastName string) (*models.Actor, error) {
	const op = "catalog.Service.UpdateActor"
	log := s.log.With("op", op, "id", id)
	actor, err := s.GetActor(ctx, id)
	if err != nil {
		return nil, err
	}
	if firstName != "" {
		actor.FirstName = firstName
	}
	if lastName != "" {
		actor.LastName = lastName
	}
	updated, err := s.actors.Update(ctx, actor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("actor not found")
			return nil, ErrActorNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteActor(ctx context.Context, id int64) error {
	const op = "catalog.Service.DeleteActor"
	if err := s.actors.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrActorNotFound
		}
		s.log.With("op", op, "id", id).Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) GetHall(ctx context.Context, id int64) (*models.CinemaHall, error) {
	const op = "catalog.Service.GetHall"
	log := s.log.With("op", op, "id", id)
	hall, err := s.halls.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("cinema hall not found")
			return nil, ErrHallNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return hall, nil
}

func (s *Service) ListHalls(ctx context.Context) ([]models.CinemaHall, error) {
	const op = "catalog.Service.ListHalls"
	halls, err := s.halls.List(ctx)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return halls, nil
}

func (s *Service) CreateHall(ctx context.Context, name string, rows, seatsInRow int32) (*models.CinemaHall, error) {
	const op = "catalog.Service.CreateHall"
	hall, err := s.halls.Insert(ctx, name, rows, seatsInRow)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return hall, nil
}

func (s *Service) UpdateHall(ctx context.Context, id int64, name string, rows, seatsInRow int32) (*models.CinemaHall, error) {
	const op = "catalog.Service.UpdateHall"
	log := s.log.With("op", op, "id", id)
	hall, err := s.GetHall(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		hall.Name = name
	}
	if rows != 0 {
		hall.Rows = rows
	}
	if seatsInRow != 0 {
		hall.SeatsInRow = seatsInRow
	}
	updated, err := s.halls.Update(ctx, hall)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("cinema hall not found")
			return nil, ErrHallNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteHall(ctx context.Context, id int64) error {
	const op = "catalog.Service.DeleteHall"
	log := s.log.With("op", op, "id", id)
	if err := s.halls.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return ErrHallNotFound
		case errors.Is(err, storage.ErrReferenced):
			log.Info("hall is still referenced")
			return ErrHallInUse
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *Service) GetMovie(ctx context.Context, id int64) (*models.MovieDetail, error) {
	const op = "catalog.Service.GetMovie"
	log := s.log.With("op", op, "id", id)
	movie, err := s.movies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *Service) ListMovies(ctx context.Context, f filters.MovieFilters) ([]models.MovieListItem, error) {
	const op = "catalog.Service.ListMovies"
	movies, err := s.movies.List(ctx, f)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return movies, nil
}

func (s *Service) CreateMovie(
	ctx context.Context,
	title, description string,
	duration int32,
	genreIDs, actorIDs []int64,
) (*models.MovieDetail, error) {
	const op = "catalog.Service.CreateMovie"
	log := s.log.With("op", op, "title", title)
	movie, err := s.movies.Insert(ctx, title, description, duration, genreIDs, actorIDs)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("movie references unknown genre or actor")
			return nil, ErrUnknownRelation
		case errors.Is(err, storage.ErrConflict):
			return nil, ErrDuplicateRelation
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *Service) UpdateMovie(
	ctx context.Context,
	id int64,
	title, description string,
	duration int32,
	genreIDs, actorIDs []int64,
) (*models.MovieDetail, error) {
	const op = "catalog.Service.UpdateMovie"
	log := s.log.With("op", op, "id", id)
	current, err := s.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	movie := current.Movie
	if title != "" {
		movie.Title = title
	}
	if description != "" {
		movie.Description = description
	}
	if duration != 0 {
		movie.Duration = duration
	}
	updated, err := s.movies.Update(ctx, &movie, genreIDs, actorIDs)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("movie or one of its relations not found")
			return nil, ErrUnknownRelation
		case errors.Is(err, storage.ErrConflict):
			return nil, ErrDuplicateRelation
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteMovie(ctx context.Context, id int64) error {
	const op = "catalog.Service.DeleteMovie"
	log := s.log.With("op", op, "id", id)
	if err := s.movies.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return ErrMovieNotFound
		case errors.Is(err, storage.ErrReferenced):
			log.Info("movie is still referenced")
			return ErrMovieInUse
		}
		log.Error(err.Error())
		return err
	}
	return nil
}
