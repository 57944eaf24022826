package main

import (
	"errors"
	"net/http"

	"cinema/proj/internal/lib/validator"
	"cinema/proj/internal/services/catalog"
)

func (app *Application) listActors(w http.ResponseWriter, r *http.Request) {
	actors, err := app.Services.Catalog.ListActors(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"actors": actors}, "")
}

func (app *Application) getActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	actor, err := app.Services.Catalog.GetActor(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrActorNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"actor": actor}, "")
}

func (app *Application) createActor(w http.ResponseWriter, r *http.Request) {
	var input struct {
		FirstName string `json:"first_name" validate:"required,max=255"`
		LastName  string `json:"last_name" validate:"required,max=255"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor, err := app.Services.Catalog.CreateActor(r.Context(), input.FirstName, input.LastName)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"actor": actor}, "Actor successfully created")
}

func (app *Application) updateActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input struct {
		FirstName string `json:"first_name" validate:"omitempty,max=255"`
		LastName  string `json:"last_name" validate:"omitempty,max=255"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	actor, err := app.Services.Catalog.UpdateActor(r.Context(), id, input.FirstName, input.LastName)
	if err != nil {
		if errors.Is(err, catalog.ErrActorNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"actor": actor}, "Actor successfully updated")
}

func (app *Application) deleteActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.Services.Catalog.DeleteActor(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrActorNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.NoContent(w, r, "Actor successfully deleted")
}
