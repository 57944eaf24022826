package main

import (
	"errors"
	"net/http"
	"time"

	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/lib/validator"
	"cinema/proj/internal/services/sessions"
)

func (app *Application) listSessions(w http.ResponseWriter, r *http.Request) {
	var query struct {
		Date  string `schema:"date"`
		Movie string `schema:"movie"`
	}
	if err := app.decodeQuery(r, &query); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	date, err := filters.ParseDate(query.Date)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	movieID, err := filters.ParseID(query.Movie)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	list, err := app.Services.Sessions.List(r.Context(), filters.SessionFilters{
		Date:    date,
		MovieID: movieID,
	})
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movie_sessions": list}, "")
}

func (app *Application) getSession(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	session, err := app.Services.Sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movie_session": session}, "")
}

func (app *Application) createSession(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ShowTime   time.Time `json:"show_time" validate:"required"`
		Movie      int64     `json:"movie" validate:"required,gt=0"`
		CinemaHall int64     `json:"cinema_hall" validate:"required,gt=0"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	session, err := app.Services.Sessions.Create(r.Context(), input.ShowTime, input.Movie, input.CinemaHall)
	if err != nil {
		if errors.Is(err, sessions.ErrUnknownReference) {
			app.Http.BadRequest(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"movie_session": session}, "Movie session successfully created")
}

func (app *Application) updateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input struct {
		ShowTime   *time.Time `json:"show_time"`
		Movie      int64      `json:"movie" validate:"omitempty,gt=0"`
		CinemaHall int64      `json:"cinema_hall" validate:"omitempty,gt=0"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	session, err := app.Services.Sessions.Update(r.Context(), id, input.ShowTime, input.Movie, input.CinemaHall)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, sessions.ErrUnknownReference):
			app.Http.BadRequest(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"movie_session": session}, "Movie session successfully updated")
}

func (app *Application) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.Services.Sessions.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, sessions.ErrSessionHasTickets):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.NoContent(w, r, "Movie session successfully deleted")
}
