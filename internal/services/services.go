package services

import (
	"log/slog"

	"cinema/proj/internal/config"
	"cinema/proj/internal/mails"
	"cinema/proj/internal/services/auth"
	"cinema/proj/internal/services/catalog"
	"cinema/proj/internal/services/orders"
	"cinema/proj/internal/services/sessions"
	"cinema/proj/internal/storage/postgres"
	"cinema/proj/internal/storage/postgres/models"
)

type Services struct {
	Auth     *auth.AuthService
	Catalog  *catalog.Service
	Sessions *sessions.Service
	Orders   *orders.Service
}

func New(log *slog.Logger, cfg *config.Config, storage *postgres.Storage, taskExecutor orders.TaskExecutor) *Services {
	stores := models.New(storage)
	mailer := mails.New(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Timeout,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.Sender,
		cfg.SMTP.RetriesCount,
	)
	return &Services{
		Auth:     auth.New(log, stores.Users, cfg.Auth.Secret, cfg.Auth.TokenTTL),
		Catalog:  catalog.New(log, stores.Genres, stores.Actors, stores.Halls, stores.Movies),
		Sessions: sessions.New(log, stores.Sessions),
		Orders:   orders.New(log, stores.Orders, mailer, taskExecutor),
	}
}
