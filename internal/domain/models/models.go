package models

import (
	"encoding/json"
	"time"
)

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Actor struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

func (a Actor) MarshalJSON() ([]byte, error) {
	type alias Actor
	return json.Marshal(struct {
		alias
		FullName string `json:"full_name"`
	}{alias(a), a.FullName()})
}

type CinemaHall struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Rows       int32  `json:"rows"`
	SeatsInRow int32  `json:"seats_in_row"`
}

// Capacity is always derived from the grid, never stored.
func (h CinemaHall) Capacity() int32 {
	return h.Rows * h.SeatsInRow
}

func (h CinemaHall) MarshalJSON() ([]byte, error) {
	type alias CinemaHall
	return json.Marshal(struct {
		alias
		Capacity int32 `json:"capacity"`
	}{alias(h), h.Capacity()})
}

type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int32  `json:"duration"` // minutes
}

// MovieDetail is the nested representation for retrieve endpoints.
type MovieDetail struct {
	Movie
	Genres []Genre `json:"genres"`
	Actors []Actor `json:"actors"`
}

// MovieListItem is the denormalized representation for list endpoints:
// related genres and actors are flattened to their names.
type MovieListItem struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int32    `json:"duration"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
}

type MovieSession struct {
	ID           int64     `json:"id"`
	ShowTime     time.Time `json:"show_time"`
	MovieID      int64     `json:"movie_id"`
	CinemaHallID int64     `json:"cinema_hall_id"`
}

type SessionListItem struct {
	ID                 int64     `json:"id"`
	ShowTime           time.Time `json:"show_time"`
	MovieTitle         string    `json:"movie_title"`
	CinemaHallName     string    `json:"cinema_hall_name"`
	CinemaHallCapacity int32     `json:"cinema_hall_capacity"`
	TicketsAvailable   int32     `json:"tickets_available"`
}

// Place is a (row, seat) coordinate within a hall's grid.
type Place struct {
	Row  int32 `json:"row"`
	Seat int32 `json:"seat"`
}

type SessionDetail struct {
	ID          int64       `json:"id"`
	ShowTime    time.Time   `json:"show_time"`
	Movie       MovieDetail `json:"movie"`
	CinemaHall  CinemaHall  `json:"cinema_hall"`
	TakenPlaces []Place     `json:"taken_places"`
}

// SessionSummary is the denormalized session shape nested into order tickets,
// so listing orders needs no extra round trip per ticket.
type SessionSummary struct {
	MovieTitle         string `json:"movie_title"`
	CinemaHallName     string `json:"cinema_hall_name"`
	CinemaHallCapacity int32  `json:"cinema_hall_capacity"`
}

type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Ticket struct {
	ID             int64 `json:"id"`
	Row            int32 `json:"row"`
	Seat           int32 `json:"seat"`
	MovieSessionID int64 `json:"movie_session"`
	OrderID        int64 `json:"-"`
}

// TicketRequest is a single seat pick inside an order submission.
type TicketRequest struct {
	Row            int32 `json:"row"`
	Seat           int32 `json:"seat"`
	MovieSessionID int64 `json:"movie_session"`
}

type TicketDetail struct {
	ID           int64          `json:"id"`
	Row          int32          `json:"row"`
	Seat         int32          `json:"seat"`
	MovieSession SessionSummary `json:"movie_session"`
}

type OrderDetail struct {
	Order
	Tickets []TicketDetail `json:"tickets"`
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

var AnonymousUser = &User{}

func (u *User) IsAnonymous() bool {
	return u == AnonymousUser
}
