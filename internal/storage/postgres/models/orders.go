package models

import (
	"context"
	"errors"

	"cinema/proj/internal/domain/models"
	"cinema/proj/internal/storage"
	"cinema/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderModel struct {
	DB *pgxpool.Pool
}

// Insert creates the order and all of its tickets in one transaction.
// Seat uniqueness per session is enforced by the unique constraint on
// (movie_session_id, row, seat) rather than a prior existence check, so
// two concurrent bookings of the same seat cannot both commit. Any
// failed ticket rolls back the whole order and is reported as a
// *storage.TicketError carrying the request index.
func (m *OrderModel) Insert(ctx context.Context, userID int64, tickets []models.TicketRequest) (*models.OrderDetail, error) {
	tx, err := m.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, _ := tx.Query(
		ctx,
		"INSERT INTO orders (user_id) VALUES ($1) RETURNING id, user_id, created_at",
		userID,
	)
	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Order])
	if err != nil {
		return nil, err
	}

	details := make([]models.TicketDetail, 0, len(tickets))
	for i, t := range tickets {
		ticketErr := func(err error) *storage.TicketError {
			return &storage.TicketError{
				Index:     i,
				Row:       t.Row,
				Seat:      t.Seat,
				SessionID: t.MovieSessionID,
				Err:       err,
			}
		}
		var hallRows, seatsInRow int32
		var movieTitle, hallName string
		err := tx.QueryRow(
			ctx,
			`SELECT h."rows", h.seats_in_row, mv.title, h.name
			FROM movie_sessions s
			JOIN cinema_halls h ON h.id = s.cinema_hall_id
			JOIN movies mv ON mv.id = s.movie_id
			WHERE s.id = $1`,
			t.MovieSessionID,
		).Scan(&hallRows, &seatsInRow, &movieTitle, &hallName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ticketErr(storage.ErrNotFound)
			}
			return nil, err
		}
		if t.Row < 1 || t.Row > hallRows || t.Seat < 1 || t.Seat > seatsInRow {
			return nil, ticketErr(storage.ErrSeatOutOfRange)
		}
		var ticketID int64
		err = tx.QueryRow(
			ctx,
			`INSERT INTO tickets ("row", seat, movie_session_id, order_id) VALUES ($1, $2, $3, $4)
			RETURNING id`,
			t.Row,
			t.Seat,
			t.MovieSessionID,
			order.ID,
		).Scan(&ticketID)
		if err != nil {
			var pgxErr *pgconn.PgError
			if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
				return nil, ticketErr(storage.ErrConflict)
			}
			return nil, err
		}
		details = append(details, models.TicketDetail{
			ID:   ticketID,
			Row:  t.Row,
			Seat: t.Seat,
			MovieSession: models.SessionSummary{
				MovieTitle:         movieTitle,
				CinemaHallName:     hallName,
				CinemaHallCapacity: hallRows * seatsInRow,
			},
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &models.OrderDetail{Order: order, Tickets: details}, nil
}

// ListByUser returns the user's orders with nested tickets and their
// denormalized session summaries, all in one query.
func (m *OrderModel) ListByUser(ctx context.Context, userID int64) ([]models.OrderDetail, error) {
	rows, err := m.DB.Query(
		ctx,
		`SELECT o.id, o.created_at, t.id AS ticket_id, t."row", t.seat,
			mv.title AS movie_title, h.name AS cinema_hall_name,
			(h."rows" * h.seats_in_row)::int AS cinema_hall_capacity
		FROM orders o
		LEFT JOIN tickets t ON t.order_id = o.id
		LEFT JOIN movie_sessions s ON s.id = t.movie_session_id
		LEFT JOIN movies mv ON mv.id = s.movie_id
		LEFT JOIN cinema_halls h ON h.id = s.cinema_hall_id
		WHERE o.user_id = $1
		ORDER BY o.created_at ASC, o.id ASC, t.id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.OrderDetail, 0)
	for rows.Next() {
		var order models.Order
		var ticketID *int64
		var row, seat, capacity *int32
		var movieTitle, hallName *string
		err := rows.Scan(
			&order.ID, &order.CreatedAt,
			&ticketID, &row, &seat,
			&movieTitle, &hallName, &capacity,
		)
		if err != nil {
			return nil, err
		}
		if len(orders) == 0 || orders[len(orders)-1].ID != order.ID {
			order.UserID = userID
			orders = append(orders, models.OrderDetail{Order: order, Tickets: []models.TicketDetail{}})
		}
		if ticketID == nil {
			continue
		}
		current := &orders[len(orders)-1]
		current.Tickets = append(current.Tickets, models.TicketDetail{
			ID:   *ticketID,
			Row:  *row,
			Seat: *seat,
			MovieSession: models.SessionSummary{
				MovieTitle:         *movieTitle,
				CinemaHallName:     *hallName,
				CinemaHallCapacity: *capacity,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
