package main

import (
	"errors"
	"net/http"

	"cinema/proj/internal/lib/validator"
	"cinema/proj/internal/services/catalog"
)

func (app *Application) listHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.Services.Catalog.ListHalls(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"cinema_halls": halls}, "")
}

func (app *Application) getHall(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	hall, err := app.Services.Catalog.GetHall(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrHallNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"cinema_hall": hall}, "")
}

func (app *Application) createHall(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name       string `json:"name" validate:"required,max=255"`
		Rows       int32  `json:"rows" validate:"required,gt=0"`
		SeatsInRow int32  `json:"seats_in_row" validate:"required,gt=0"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	hall, err := app.Services.Catalog.CreateHall(r.Context(), input.Name, input.Rows, input.SeatsInRow)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"cinema_hall": hall}, "Cinema hall successfully created")
}

func (app *Application) updateHall(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input struct {
		Name       string `json:"name" validate:"omitempty,max=255"`
		Rows       int32  `json:"rows" validate:"omitempty,gt=0"`
		SeatsInRow int32  `json:"seats_in_row" validate:"omitempty,gt=0"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	hall, err := app.Services.Catalog.UpdateHall(r.Context(), id, input.Name, input.Rows, input.SeatsInRow)
	if err != nil {
		if errors.Is(err, catalog.ErrHallNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"cinema_hall": hall}, "Cinema hall successfully updated")
}

func (app *Application) deleteHall(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.Services.Catalog.DeleteHall(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrHallNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, catalog.ErrHallInUse):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.NoContent(w, r, "Cinema hall successfully deleted")
}
