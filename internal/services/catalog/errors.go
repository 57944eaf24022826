package catalog

import "errors"

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrGenreExists   = errors.New("genre with that name already exists")
	ErrActorNotFound = errors.New("actor not found")
	ErrHallNotFound  = errors.New("cinema hall not found")
	ErrHallInUse     = errors.New("cinema hall is referenced by movie sessions")
	ErrMovieNotFound = errors.New("movie not found")
	ErrMovieInUse    = errors.New("movie is referenced by movie sessions")

	// ErrUnknownRelation means a genre or actor id in a movie write does not exist.
	ErrUnknownRelation   = errors.New("unknown genre or actor id")
	ErrDuplicateRelation = errors.New("duplicate genre or actor id")
)
