package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genresStub struct {
	get    func(ctx context.Context, id int64) (*models.Genre, error)
	list   func(ctx context.Context) ([]models.Genre, error)
	insert func(ctx context.Context, name string) (*models.Genre, error)
	update func(ctx context.Context, genre *models.Genre) (*models.Genre, error)
	delete func(ctx context.Context, id int64) error
}

func (s *genresStub) Get(ctx context.Context, id int64) (*models.Genre, error) { return s.get(ctx, id) }
func (s *genresStub) List(ctx context.Context) ([]models.Genre, error)         { return s.list(ctx) }
func (s *genresStub) Insert(ctx context.Context, name string) (*models.Genre, error) {
	return s.insert(ctx, name)
}
func (s *genresStub) Update(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
	return s.update(ctx, genre)
}
func (s *genresStub) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

type actorsStub struct {
	get    func(ctx context.Context, id int64) (*models.Actor, error)
	list   func(ctx context.Context) ([]models.Actor, error)
	insert func(ctx context.Context, firstName, lastName string) (*models.Actor, error)
	update func(ctx context.Context, actor *models.Actor) (*models.Actor, error)
	delete func(ctx context.Context, id int64) error
}

func (s *actorsStub) Get(ctx context.Context, id int64) (*models.Actor, error) { return s.get(ctx, id) }
func (s *actorsStub) List(ctx context.Context) ([]models.Actor, error)         { return s.list(ctx) }
func (s *actorsStub) Insert(ctx context.Context, firstName, lastName string) (*models.Actor, error) {
	return s.insert(ctx, firstName, lastName)
}
func (s *actorsStub) Update(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	return s.update(ctx, actor)
}
func (s *actorsStub) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

type hallsStub struct {
	get    func(ctx context.Context, id int64) (*models.CinemaHall, error)
	list   func(ctx context.Context) ([]models.CinemaHall, error)
	insert func(ctx context.Context, name string, rows, seatsInRow int32) (*models.CinemaHall, error)
	update func(ctx context.Context, hall *models.CinemaHall) (*models.CinemaHall, error)
	delete func(ctx context.Context, id int64) error
}

func (s *hallsStub) Get(ctx context.Context, id int64) (*models.CinemaHall, error) {
	return s.get(ctx, id)
}
func (s *hallsStub) List(ctx context.Context) ([]models.CinemaHall, error) { return s.list(ctx) }
func (s *hallsStub) Insert(ctx context.Context, name string, rows, seatsInRow int32) (*models.CinemaHall, error) {
	return s.insert(ctx, name, rows, seatsInRow)
}
func (s *hallsStub) Update(ctx context.Context, hall *models.CinemaHall) (*models.CinemaHall, error) {
	return s.update(ctx, hall)
}
func (s *hallsStub) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

type moviesStub struct {
	get    func(ctx context.Context, id int64) (*models.MovieDetail, error)
	list   func(ctx context.Context, f filters.MovieFilters) ([]models.MovieListItem, error)
	insert func(ctx context.Context, title, description string, duration int32, genreIDs, actorIDs []int64) (*models.MovieDetail, error)
	update func(ctx context.Context, movie *models.Movie, genreIDs, actorIDs []int64) (*models.MovieDetail, error)
	delete func(ctx context.Context, id int64) error
}

func (s *moviesStub) Get(ctx context.Context, id int64) (*models.MovieDetail, error) {
	return s.get(ctx, id)
}
func (s *moviesStub) List(ctx context.Context, f filters.MovieFilters) ([]models.MovieListItem, error) {
	return s.list(ctx, f)
}
func (s *moviesStub) Insert(ctx context.Context, title, description string, duration int32, genreIDs, actorIDs []int64) (*models.MovieDetail, error) {
	return s.insert(ctx, title, description, duration, genreIDs, actorIDs)
}
func (s *moviesStub) Update(ctx context.Context, movie *models.Movie, genreIDs, actorIDs []int64) (*models.MovieDetail, error) {
	return s.update(ctx, movie, genreIDs, actorIDs)
}
func (s *moviesStub) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

func newTestService(genres GenresStorage, actors ActorsStorage, halls HallsStorage, movies MoviesStorage) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, genres, actors, halls, movies)
}

func TestGetGenre(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		genres := &genresStub{
			get: func(ctx context.Context, id int64) (*models.Genre, error) {
				return &models.Genre{ID: id, Name: "Drama"}, nil
			},
		}
		genre, err := newTestService(genres, nil, nil, nil).GetGenre(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Drama", genre.Name)
	})
	t.Run("not found", func(t *testing.T) {
		genres := &genresStub{
			get: func(ctx context.Context, id int64) (*models.Genre, error) {
				return nil, storage.ErrNotFound
			},
		}
		_, err := newTestService(genres, nil, nil, nil).GetGenre(context.Background(), 1)
		assert.ErrorIs(t, err, ErrGenreNotFound)
	})
}

func TestCreateGenre(t *testing.T) {
	genres := &genresStub{
		insert: func(ctx context.Context, name string) (*models.Genre, error) {
			return nil, storage.ErrConflict
		},
	}
	_, err := newTestService(genres, nil, nil, nil).CreateGenre(context.Background(), "Drama")
	assert.ErrorIs(t, err, ErrGenreExists)
}

func TestUpdateGenre(t *testing.T) {
	t.Run("empty name keeps current", func(t *testing.T) {
		genres := &genresStub{
			get: func(ctx context.Context, id int64) (*models.Genre, error) {
				return &models.Genre{ID: id, Name: "Drama"}, nil
			},
			update: func(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
				assert.Equal(t, "Drama", genre.Name)
				return genre, nil
			},
		}
		genre, err := newTestService(genres, nil, nil, nil).UpdateGenre(context.Background(), 1, "")
		require.NoError(t, err)
		assert.Equal(t, "Drama", genre.Name)
	})
	t.Run("duplicate name", func(t *testing.T) {
		genres := &genresStub{
			get: func(ctx context.Context, id int64) (*models.Genre, error) {
				return &models.Genre{ID: id, Name: "Drama"}, nil
			},
			update: func(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
				return nil, storage.ErrConflict
			},
		}
		_, err := newTestService(genres, nil, nil, nil).UpdateGenre(context.Background(), 1, "Comedy")
		assert.ErrorIs(t, err, ErrGenreExists)
	})
}

func TestUpdateActor(t *testing.T) {
	actors := &actorsStub{
		get: func(ctx context.Context, id int64) (*models.Actor, error) {
			return &models.Actor{ID: id, FirstName: "Keanu", LastName: "Reeves"}, nil
		},
		update: func(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
			assert.Equal(t, "John", actor.FirstName)
			assert.Equal(t, "Reeves", actor.LastName)
			return actor, nil
		},
	}
	actor, err := newTestService(nil, actors, nil, nil).UpdateActor(context.Background(), 1, "John", "")
	require.NoError(t, err)
	assert.Equal(t, "John Reeves", actor.FullName())
}

func TestUpdateHall(t *testing.T) {
	halls := &hallsStub{
		get: func(ctx context.Context, id int64) (*models.CinemaHall, error) {
			return &models.CinemaHall{ID: id, Name: "Blue", Rows: 10, SeatsInRow: 20}, nil
		},
		update: func(ctx context.Context, hall *models.CinemaHall) (*models.CinemaHall, error) {
			assert.Equal(t, "Blue", hall.Name)
			assert.Equal(t, int32(10), hall.Rows)
			assert.Equal(t, int32(15), hall.SeatsInRow)
			return hall, nil
		},
	}
	hall, err := newTestService(nil, nil, halls, nil).UpdateHall(context.Background(), 1, "", 0, 15)
	require.NoError(t, err)
	assert.Equal(t, int32(150), hall.Capacity())
}

func TestDeleteHall(t *testing.T) {
	t.Run("referenced by sessions", func(t *testing.T) {
		halls := &hallsStub{
			delete: func(ctx context.Context, id int64) error { return storage.ErrReferenced },
		}
		err := newTestService(nil, nil, halls, nil).DeleteHall(context.Background(), 1)
		assert.ErrorIs(t, err, ErrHallInUse)
	})
	t.Run("not found", func(t *testing.T) {
		halls := &hallsStub{
			delete: func(ctx context.Context, id int64) error { return storage.ErrNotFound },
		}
		err := newTestService(nil, nil, halls, nil).DeleteHall(context.Background(), 1)
		assert.ErrorIs(t, err, ErrHallNotFound)
	})
}

func TestCreateMovie(t *testing.T) {
	t.Run("unknown genre or actor", func(t *testing.T) {
		movies := &moviesStub{
			insert: func(ctx context.Context, title, description string, duration int32, genreIDs, actorIDs []int64) (*models.MovieDetail, error) {
				return nil, storage.ErrNotFound
			},
		}
		_, err := newTestService(nil, nil, nil, movies).CreateMovie(context.Background(), "Dune", "desc", 155, []int64{99}, nil)
		assert.ErrorIs(t, err, ErrUnknownRelation)
	})
	t.Run("duplicate relation", func(t *testing.T) {
		movies := &moviesStub{
			insert: func(ctx context.Context, title, description string, duration int32, genreIDs, actorIDs []int64) (*models.MovieDetail, error) {
				return nil, storage.ErrConflict
			},
		}
		_, err := newTestService(nil, nil, nil, movies).CreateMovie(context.Background(), "Dune", "desc", 155, []int64{1, 1}, nil)
		assert.ErrorIs(t, err, ErrDuplicateRelation)
	})
}

func TestUpdateMovie(t *testing.T) {
	movies := &moviesStub{
		get: func(ctx context.Context, id int64) (*models.MovieDetail, error) {
			return &models.MovieDetail{
				Movie: models.Movie{ID: id, Title: "Dune", Description: "desc", Duration: 155},
			}, nil
		},
		update: func(ctx context.Context, movie *models.Movie, genreIDs, actorIDs []int64) (*models.MovieDetail, error) {
			assert.Equal(t, "Dune: Part Two", movie.Title)
			assert.Equal(t, "desc", movie.Description)
			assert.Equal(t, int32(166), movie.Duration)
			assert.Equal(t, []int64{2, 3}, genreIDs)
			assert.Nil(t, actorIDs)
			return &models.MovieDetail{Movie: *movie}, nil
		},
	}
	updated, err := newTestService(nil, nil, nil, movies).UpdateMovie(
		context.Background(), 1, "Dune: Part Two", "", 166, []int64{2, 3}, nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part Two", updated.Title)
}

func TestDeleteMovie(t *testing.T) {
	movies := &moviesStub{
		delete: func(ctx context.Context, id int64) error { return storage.ErrReferenced },
	}
	err := newTestService(nil, nil, nil, movies).DeleteMovie(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMovieInUse)
}

func TestListMovies(t *testing.T) {
	movies := &moviesStub{
		list: func(ctx context.Context, f filters.MovieFilters) ([]models.MovieListItem, error) {
			assert.Equal(t, []int64{1, 2}, f.Genres)
			assert.Equal(t, "dune", f.Title)
			return []models.MovieListItem{{ID: 1, Title: "Dune"}}, nil
		},
	}
	list, err := newTestService(nil, nil, nil, movies).ListMovies(context.Background(), filters.MovieFilters{
		Genres: []int64{1, 2},
		Title:  "dune",
	})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
