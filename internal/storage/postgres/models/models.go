package models

import "cinema/proj/internal/storage/postgres"

type Models struct {
	Genres   *GenreModel
	Actors   *ActorModel
	Halls    *CinemaHallModel
	Movies   *MovieModel
	Sessions *SessionModel
	Orders   *OrderModel
	Users    *UserModel
}

func New(db *postgres.Storage) *Models {
	return &Models{
		Genres:   &GenreModel{db.Conn},
		Actors:   &ActorModel{db.Conn},
		Halls:    &CinemaHallModel{db.Conn},
		Movies:   &MovieModel{db.Conn},
		Sessions: &SessionModel{db.Conn},
		Orders:   &OrderModel{db.Conn},
		Users:    &UserModel{db.Conn},
	}
}
