package main

import (
	"errors"
	"net/http"

	"cinema/proj/internal/lib/validator"
	"cinema/proj/internal/services/catalog"
)

func (app *Application) listGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.Services.Catalog.ListGenres(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"genres": genres}, "")
}

func (app *Application) getGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	genre, err := app.Services.Catalog.GetGenre(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrGenreNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"genre": genre}, "")
}

func (app *Application) createGenre(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name" validate:"required,max=255"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	genre, err := app.Services.Catalog.CreateGenre(r.Context(), input.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrGenreExists) {
			app.Http.Conflict(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"genre": genre}, "Genre successfully created")
}

func (app *Application) updateGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input struct {
		Name string `json:"name" validate:"omitempty,max=255"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	genre, err := app.Services.Catalog.UpdateGenre(r.Context(), id, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrGenreNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, catalog.ErrGenreExists):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"genre": genre}, "Genre successfully updated")
}

func (app *Application) deleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.Services.Catalog.DeleteGenre(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrGenreNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.NoContent(w, r, "Genre successfully deleted")
}
