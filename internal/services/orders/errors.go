package orders

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("movie session not found")
	ErrSeatOutOfRange    = errors.New("seat is out of range for the hall")
	ErrSeatAlreadyBooked = errors.New("seat is already booked for this session")
)

// TicketError points at the ticket request that made the whole order fail.
type TicketError struct {
	Index     int
	Row       int32
	Seat      int32
	SessionID int64
	Err       error
}

func (e *TicketError) Error() string {
	return fmt.Sprintf(
		"ticket %d (session %d, row %d, seat %d): %s",
		e.Index, e.SessionID, e.Row, e.Seat, e.Err,
	)
}

func (e *TicketError) Unwrap() error {
	return e.Err
}
