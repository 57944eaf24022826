package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/services/sessions"
	"cinema/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionsApp(t *testing.T, st *sessionsStorageStub) *Application {
	t.Helper()
	app := NewTestApplication(nil, t)
	app.Services.Sessions = sessions.New(app.log, st)
	return app
}

func TestListSessions(t *testing.T) {
	var gotFilters filters.SessionFilters
	app := newSessionsApp(t, &sessionsStorageStub{
		list: func(ctx context.Context, f filters.SessionFilters) ([]models.SessionListItem, error) {
			gotFilters = f
			return []models.SessionListItem{
				{ID: 1, MovieTitle: "Dune", CinemaHallName: "Blue", CinemaHallCapacity: 150, TicketsAvailable: 148},
			}, nil
		},
	})
	t.Run("no filters", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/movie-sessions", nil)
		app.listSessions(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, gotFilters.Date)
		assert.Nil(t, gotFilters.MovieID)
	})
	t.Run("date and movie filters", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/movie-sessions?date=2026-09-01&movie=5", nil)
		app.listSessions(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, gotFilters.Date)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *gotFilters.Date)
		require.NotNil(t, gotFilters.MovieID)
		assert.Equal(t, int64(5), *gotFilters.MovieID)
	})
	t.Run("invalid date", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/movie-sessions?date=tomorrow", nil)
		app.listSessions(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
	t.Run("invalid movie id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/movie-sessions?movie=dune", nil)
		app.listSessions(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetSession(t *testing.T) {
	app := newSessionsApp(t, &sessionsStorageStub{
		get: func(ctx context.Context, id int64) (*models.SessionDetail, error) {
			if id != 1 {
				return nil, storage.ErrNotFound
			}
			return &models.SessionDetail{
				ID:          1,
				CinemaHall:  models.CinemaHall{ID: 3, Rows: 10, SeatsInRow: 15},
				TakenPlaces: []models.Place{{Row: 1, Seat: 2}},
			}, nil
		},
	})
	t.Run("found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/movie-sessions/1", nil), "id", "1")
		app.getSession(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
	t.Run("not found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/movie-sessions/9", nil), "id", "9")
		app.getSession(recorder, request)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestDeleteSession(t *testing.T) {
	app := newSessionsApp(t, &sessionsStorageStub{
		delete: func(ctx context.Context, id int64) error {
			switch id {
			case 1:
				return nil
			case 2:
				return storage.ErrReferenced
			default:
				return storage.ErrNotFound
			}
		},
	})
	t.Run("deleted", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/movie-sessions/1", nil), "id", "1")
		app.deleteSession(recorder, request)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
	t.Run("has booked tickets", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/movie-sessions/2", nil), "id", "2")
		app.deleteSession(recorder, request)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
	t.Run("not found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/movie-sessions/9", nil), "id", "9")
		app.deleteSession(recorder, request)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
