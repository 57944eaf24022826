package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)
	router.Use(app.Authenticate)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.healthcheck)
		r.Route("/genres", func(r chi.Router) {
			r.Get("/", app.listGenres)
			r.Post("/", app.createGenre)
			r.Get("/{id}", app.getGenre)
			r.Patch("/{id}", app.updateGenre)
			r.Delete("/{id}", app.deleteGenre)
		})
		r.Route("/actors", func(r chi.Router) {
			r.Get("/", app.listActors)
			r.Post("/", app.createActor)
			r.Get("/{id}", app.getActor)
			r.Patch("/{id}", app.updateActor)
			r.Delete("/{id}", app.deleteActor)
		})
		r.Route("/cinema-halls", func(r chi.Router) {
			r.Get("/", app.listHalls)
			r.Post("/", app.createHall)
			r.Get("/{id}", app.getHall)
			r.Patch("/{id}", app.updateHall)
			r.Delete("/{id}", app.deleteHall)
		})
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", app.listMovies)
			r.Post("/", app.createMovie)
			r.Get("/{id}", app.getMovie)
			r.Patch("/{id}", app.updateMovie)
			r.Delete("/{id}", app.deleteMovie)
		})
		r.Route("/movie-sessions", func(r chi.Router) {
			r.Get("/", app.listSessions)
			r.Post("/", app.createSession)
			r.Get("/{id}", app.getSession)
			r.Patch("/{id}", app.updateSession)
			r.Delete("/{id}", app.deleteSession)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Use(app.requireAuthenticatedUser)
			r.Get("/", app.listOrders)
			r.Post("/", app.createOrder)
		})
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/signup", app.signup)
			r.Post("/login", app.login)
		})
	})
	return router
}
