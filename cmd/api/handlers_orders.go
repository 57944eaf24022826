package main

import (
	"errors"
	"net/http"

	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/lib/validator"
	"cinema/proj/internal/services/orders"
)

func (app *Application) listOrders(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	list, err := app.Services.Orders.List(r.Context(), user.ID)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"orders": list}, "")
}

func (app *Application) createOrder(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	var input struct {
		Tickets []struct {
			Row          int32 `json:"row" validate:"required,gt=0"`
			Seat         int32 `json:"seat" validate:"required,gt=0"`
			MovieSession int64 `json:"movie_session" validate:"required,gt=0"`
		} `json:"tickets" validate:"dive"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	tickets := make([]models.TicketRequest, 0, len(input.Tickets))
	for _, t := range input.Tickets {
		tickets = append(tickets, models.TicketRequest{
			Row:            t.Row,
			Seat:           t.Seat,
			MovieSessionID: t.MovieSession,
		})
	}
	order, err := app.Services.Orders.Create(r.Context(), user, tickets)
	if err != nil {
		var ticketErr *orders.TicketError
		if errors.As(err, &ticketErr) {
			switch {
			case errors.Is(err, orders.ErrSessionNotFound):
				app.Http.NotFound(w, r, ticketErr.Error())
			case errors.Is(err, orders.ErrSeatOutOfRange):
				app.Http.UnprocessableEntity(w, r, map[string]string{"tickets": ticketErr.Error()})
			case errors.Is(err, orders.ErrSeatAlreadyBooked):
				app.Http.Conflict(w, r, ticketErr.Error())
			default:
				app.Http.ServerError(w, r, err, "")
			}
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"order": order}, "Order successfully created")
}
