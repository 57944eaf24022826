package orders

import (
	"context"
	"errors"
	"log/slog"

	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"
)

type Storage interface {
	Insert(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]models.OrderDetail, error)
}

type MailProvider interface {
	Send(recipient string, tmplName string, tmplData any) error
}

type TaskExecutor interface {
	Add(task func())
}

type Service struct {
	log          *slog.Logger
	storage      Storage
	mailer       MailProvider
	taskExecutor TaskExecutor
}

func New(log *slog.Logger, storage Storage, mailer MailProvider, taskExecutor TaskExecutor) *Service {
	return &Service{
		log:          log,
		storage:      storage,
		mailer:       mailer,
		taskExecutor: taskExecutor,
	}
}

// Create books all requested seats atomically: either the whole order with
// every ticket is committed, or nothing is. An empty ticket list is a valid
// order. On success a confirmation email is queued in the background; mail
// failures never affect the committed order.
func (s *Service) Create(ctx context.Context, user *models.User, tickets []models.TicketRequest) (*models.OrderDetail, error) {
	const op = "orders.Service.Create"
	log := s.log.With("op", op, "user_id", user.ID, "tickets", len(tickets))
	order, err := s.storage.Insert(ctx, user.ID, tickets)
	if err != nil {
		var ticketErr *storage.TicketError
		if errors.As(err, &ticketErr) {
			mapped := &TicketError{
				Index:     ticketErr.Index,
				Row:       ticketErr.Row,
				Seat:      ticketErr.Seat,
				SessionID: ticketErr.SessionID,
			}
			switch {
			case errors.Is(ticketErr.Err, storage.ErrNotFound):
				mapped.Err = ErrSessionNotFound
			case errors.Is(ticketErr.Err, storage.ErrSeatOutOfRange):
				mapped.Err = ErrSeatOutOfRange
			case errors.Is(ticketErr.Err, storage.ErrConflict):
				mapped.Err = ErrSeatAlreadyBooked
			default:
				log.Error(err.Error())
				return nil, err
			}
			log.Info("order rejected", "reason", mapped.Error())
			return nil, mapped
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("order created", "order_id", order.ID)
	s.taskExecutor.Add(func() {
		s.sendConfirmationEmail(user, order)
	})
	return order, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]models.OrderDetail, error) {
	const op = "orders.Service.List"
	orders, err := s.storage.ListByUser(ctx, userID)
	if err != nil {
		s.log.With("op", op, "user_id", userID).Error(err.Error())
		return nil, err
	}
	return orders, nil
}

func (s *Service) sendConfirmationEmail(user *models.User, order *models.OrderDetail) {
	err := s.mailer.Send(
		user.Email,
		"order_confirmation.html",
		map[string]any{
			"username":  user.Username,
			"orderID":   order.ID,
			"createdAt": order.CreatedAt,
			"tickets":   order.Tickets,
		},
	)
	if err != nil {
		s.log.Error("Error sending order confirmation email", "errMsg", err.Error(), "order_id", order.ID)
	}
}
