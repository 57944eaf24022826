package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/services/orders"
	"cinema/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrdersApp(t *testing.T, st *ordersStorageStub) (*Application, *mailerStub) {
	t.Helper()
	app := NewTestApplication(nil, t)
	mailer := &mailerStub{}
	app.Services.Orders = orders.New(app.log, st, mailer, syncExecutor{})
	return app, mailer
}

var testOrderUser = &models.User{ID: 7, Username: "john", Email: "john@example.com"}

func TestCreateOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app, mailer := newOrdersApp(t, &ordersStorageStub{
			insert: func(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error) {
				assert.Equal(t, testOrderUser.ID, userID)
				require.Len(t, tickets, 2)
				assert.Equal(t, models.TicketRequest{Row: 1, Seat: 2, MovieSessionID: 10}, tickets[0])
				return &models.OrderDetail{
					Order: models.Order{ID: 42, UserID: userID},
					Tickets: []models.TicketDetail{
						{ID: 1, Row: 1, Seat: 2},
						{ID: 2, Row: 1, Seat: 3},
					},
				}, nil
			},
		})
		recorder := httptest.NewRecorder()
		body := strings.NewReader(`{"tickets": [
			{"row": 1, "seat": 2, "movie_session": 10},
			{"row": 1, "seat": 3, "movie_session": 10}
		]}`)
		request := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/orders", body), testOrderUser)
		app.createOrder(recorder, request)
		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, []string{testOrderUser.Email}, mailer.recipients)
	})
	t.Run("empty ticket list", func(t *testing.T) {
		app, _ := newOrdersApp(t, &ordersStorageStub{
			insert: func(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error) {
				assert.Empty(t, tickets)
				return &models.OrderDetail{
					Order:   models.Order{ID: 43, UserID: userID},
					Tickets: []models.TicketDetail{},
				}, nil
			},
		})
		recorder := httptest.NewRecorder()
		body := strings.NewReader(`{"tickets": []}`)
		request := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/orders", body), testOrderUser)
		app.createOrder(recorder, request)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
	t.Run("unknown session", func(t *testing.T) {
		app, mailer := newOrdersApp(t, &ordersStorageStub{
			insert: func(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error) {
				return nil, &storage.TicketError{Index: 0, Row: 1, Seat: 2, SessionID: 99, Err: storage.ErrNotFound}
			},
		})
		recorder := httptest.NewRecorder()
		body := strings.NewReader(`{"tickets": [{"row": 1, "seat": 2, "movie_session": 99}]}`)
		request := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/orders", body), testOrderUser)
		app.createOrder(recorder, request)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Empty(t, mailer.recipients)
	})
	t.Run("seat out of range", func(t *testing.T) {
		app, _ := newOrdersApp(t, &ordersStorageStub{
			insert: func(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error) {
				return nil, &storage.TicketError{Index: 0, Row: 99, Seat: 2, SessionID: 10, Err: storage.ErrSeatOutOfRange}
			},
		})
		recorder := httptest.NewRecorder()
		body := strings.NewReader(`{"tickets": [{"row": 99, "seat": 2, "movie_session": 10}]}`)
		request := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/orders", body), testOrderUser)
		app.createOrder(recorder, request)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
	t.Run("seat already booked", func(t *testing.T) {
		app, mailer := newOrdersApp(t, &ordersStorageStub{
			insert: func(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error) {
				return nil, &storage.TicketError{Index: 0, Row: 1, Seat: 2, SessionID: 10, Err: storage.ErrConflict}
			},
		})
		recorder := httptest.NewRecorder()
		body := strings.NewReader(`{"tickets": [{"row": 1, "seat": 2, "movie_session": 10}]}`)
		request := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/orders", body), testOrderUser)
		app.createOrder(recorder, request)
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Empty(t, mailer.recipients)
	})
	t.Run("invalid ticket payload", func(t *testing.T) {
		app, _ := newOrdersApp(t, &ordersStorageStub{})
		recorder := httptest.NewRecorder()
		body := strings.NewReader(`{"tickets": [{"row": 0, "seat": 2, "movie_session": 10}]}`)
		request := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/orders", body), testOrderUser)
		app.createOrder(recorder, request)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestListOrders(t *testing.T) {
	app, _ := newOrdersApp(t, &ordersStorageStub{
		listByUser: func(ctx context.Context, userID int64) ([]models.OrderDetail, error) {
			assert.Equal(t, testOrderUser.ID, userID)
			return []models.OrderDetail{
				{Order: models.Order{ID: 1, UserID: userID}, Tickets: []models.TicketDetail{}},
				{Order: models.Order{ID: 2, UserID: userID}, Tickets: []models.TicketDetail{{ID: 5, Row: 1, Seat: 2}}},
			}, nil
		},
	})
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), testOrderUser)
	app.listOrders(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeResponse(t, recorder)
	assert.Len(t, resp.Data["orders"], 2)
}
