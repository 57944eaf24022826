package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema/proj/internal/config"
	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/services"

	"github.com/go-chi/chi/v5"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/stretchr/testify/require"
)

func NewTestApplication(cfg *config.Config, t *testing.T) *Application {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{
			Auth: config.Auth{Secret: "test-secret", TokenTTL: time.Hour},
		}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	queryDecoder := schema.NewDecoder()
	queryDecoder.IgnoreUnknownKeys(true)
	return &Application{
		cfg:          cfg,
		log:          log,
		validator:    govalidator.New(govalidator.WithRequiredStructEnabled()),
		queryDecoder: queryDecoder,
		Http:         &Http{log: log, cfg: cfg},
		Services:     &services.Services{},
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), CtxKeyUser, user))
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp
}

type genresStorageStub struct {
	get    func(ctx context.Context, id int64) (*models.Genre, error)
	list   func(ctx context.Context) ([]models.Genre, error)
	insert func(ctx context.Context, name string) (*models.Genre, error)
	update func(ctx context.Context, genre *models.Genre) (*models.Genre, error)
	delete func(ctx context.Context, id int64) error
}

func (s *genresStorageStub) Get(ctx context.Context, id int64) (*models.Genre, error) {
	return s.get(ctx, id)
}
func (s *genresStorageStub) List(ctx context.Context) ([]models.Genre, error) { return s.list(ctx) }
func (s *genresStorageStub) Insert(ctx context.Context, name string) (*models.Genre, error) {
	return s.insert(ctx, name)
}
func (s *genresStorageStub) Update(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
	return s.update(ctx, genre)
}
func (s *genresStorageStub) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

type sessionsStorageStub struct {
	list   func(ctx context.Context, f filters.SessionFilters) ([]models.SessionListItem, error)
	get    func(ctx context.Context, id int64) (*models.SessionDetail, error)
	insert func(ctx context.Context, showTime time.Time, movieID, cinemaHallID int64) (*models.MovieSession, error)
	update func(ctx context.Context, session *models.MovieSession) (*models.MovieSession, error)
	delete func(ctx context.Context, id int64) error
}

func (s *sessionsStorageStub) List(ctx context.Context, f filters.SessionFilters) ([]models.SessionListItem, error) {
	return s.list(ctx, f)
}
func (s *sessionsStorageStub) Get(ctx context.Context, id int64) (*models.SessionDetail, error) {
	return s.get(ctx, id)
}
func (s *sessionsStorageStub) Insert(ctx context.Context, showTime time.Time, movieID, cinemaHallID int64) (*models.MovieSession, error) {
	return s.insert(ctx, showTime, movieID, cinemaHallID)
}
func (s *sessionsStorageStub) Update(ctx context.Context, session *models.MovieSession) (*models.MovieSession, error) {
	return s.update(ctx, session)
}
func (s *sessionsStorageStub) Delete(ctx context.Context, id int64) error { return s.delete(ctx, id) }

type ordersStorageStub struct {
	insert     func(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error)
	listByUser func(ctx context.Context, userID int64) ([]models.OrderDetail, error)
}

func (s *ordersStorageStub) Insert(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error) {
	return s.insert(ctx, userID, tickets)
}
func (s *ordersStorageStub) ListByUser(ctx context.Context, userID int64) ([]models.OrderDetail, error) {
	return s.listByUser(ctx, userID)
}

type usersStorageStub struct {
	insert     func(ctx context.Context, username, email string, passwordHash []byte) (*models.User, error)
	get        func(ctx context.Context, id int64) (*models.User, error)
	getByEmail func(ctx context.Context, email string) (*models.User, error)
}

func (s *usersStorageStub) Insert(ctx context.Context, username, email string, passwordHash []byte) (*models.User, error) {
	return s.insert(ctx, username, email, passwordHash)
}
func (s *usersStorageStub) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.get(ctx, id)
}
func (s *usersStorageStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

type mailerStub struct {
	recipients []string
}

func (m *mailerStub) Send(recipient string, tmplName string, tmplData any) error {
	m.recipients = append(m.recipients, recipient)
	return nil
}

type syncExecutor struct{}

func (syncExecutor) Add(task func()) { task() }
