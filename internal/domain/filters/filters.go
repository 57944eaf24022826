package filters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidFilter = errors.New("invalid filter")

const DateLayout = "2006-01-02"

type MovieFilters struct {
	Actors []int64
	Genres []int64
	Title  string
}

type SessionFilters struct {
	// Date matches the stored date component of show_time (wall-clock,
	// never UTC-shifted).
	Date    *time.Time
	MovieID *int64
}

// ParseIDList parses a comma delimited list of integer ids, e.g. "1,2,3".
// An empty string means the filter is absent.
func ParseIDList(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid id list", ErrInvalidFilter, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid date, expected YYYY-MM-DD", ErrInvalidFilter, s)
	}
	return &date, nil
}

func ParseID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid id", ErrInvalidFilter, s)
	}
	return &id, nil
}
