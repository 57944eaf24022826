package main

import (
	"errors"
	"net/http"

	"cinema/proj/internal/domain/filters"
	"cinema/proj/internal/lib/validator"
	"cinema/proj/internal/services/catalog"
)

func (app *Application) listMovies(w http.ResponseWriter, r *http.Request) {
	var query struct {
		Actors string `schema:"actors"`
		Genres string `schema:"genres"`
		Title  string `schema:"title"`
	}
	if err := app.decodeQuery(r, &query); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	actorIDs, err := filters.ParseIDList(query.Actors)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	genreIDs, err := filters.ParseIDList(query.Genres)
	if err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	movies, err := app.Services.Catalog.ListMovies(r.Context(), filters.MovieFilters{
		Actors: actorIDs,
		Genres: genreIDs,
		Title:  query.Title,
	})
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movies": movies}, "")
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	movie, err := app.Services.Catalog.GetMovie(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrMovieNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "")
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string  `json:"title" validate:"required,max=255"`
		Description string  `json:"description" validate:"required"`
		Duration    int32   `json:"duration" validate:"required,gt=0"`
		Genres      []int64 `json:"genres" validate:"omitempty,dive,gt=0"`
		Actors      []int64 `json:"actors" validate:"omitempty,dive,gt=0"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	movie, err := app.Services.Catalog.CreateMovie(
		r.Context(),
		input.Title,
		input.Description,
		input.Duration,
		input.Genres,
		input.Actors,
	)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownRelation), errors.Is(err, catalog.ErrDuplicateRelation):
			app.Http.BadRequest(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, envelop{"movie": movie}, "Movie successfully created")
}

func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input struct {
		Title       string  `json:"title" validate:"omitempty,max=255"`
		Description string  `json:"description" validate:"omitempty"`
		Duration    int32   `json:"duration" validate:"omitempty,gt=0"`
		Genres      []int64 `json:"genres" validate:"omitempty,dive,gt=0"`
		Actors      []int64 `json:"actors" validate:"omitempty,dive,gt=0"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	movie, err := app.Services.Catalog.UpdateMovie(
		r.Context(),
		id,
		input.Title,
		input.Description,
		input.Duration,
		input.Genres,
		input.Actors,
	)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMovieNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, catalog.ErrUnknownRelation), errors.Is(err, catalog.ErrDuplicateRelation):
			app.Http.BadRequest(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "Movie successfully updated")
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.Services.Catalog.DeleteMovie(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrMovieNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, catalog.ErrMovieInUse):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.NoContent(w, r, "Movie successfully deleted")
}
