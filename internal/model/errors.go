package model

import "net/http"

// DomainError is a recoverable service-layer failure. It carries the
// HTTP status the error middleware should answer with; none of these
// abort the process.
type DomainError struct {
	message string
	status  int
}

func (e *DomainError) Error() string { return e.message }

func (e *DomainError) StatusCode() int { return e.status }

var (
	ErrInvalidDateFormat     = &DomainError{"invalid date format, expected YYYY-MM-DD", http.StatusBadRequest}
	ErrInvalidDateTimeFormat = &DomainError{"invalid date-time format, expected YYYY-MM-DD HH:MM", http.StatusBadRequest}
	ErrSlotConflict          = &DomainError{"time slot already taken", http.StatusConflict}
)
