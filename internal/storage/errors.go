package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrReferenced = errors.New("referenced by other records")

	ErrSeatOutOfRange = errors.New("seat out of range")
)

// TicketError reports which ticket request of an order failed and why.
// Err is one of ErrNotFound (unknown session), ErrSeatOutOfRange or
// ErrConflict (seat already booked).
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
