package sessions

import "errors"

var (
	ErrSessionNotFound   = errors.New("movie session not found")
	ErrSessionHasTickets = errors.New("movie session has booked tickets")
	ErrUnknownReference  = errors.New("unknown movie or cinema hall id")
)
