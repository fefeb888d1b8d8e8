package common

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrNotFound wraps gorm.ErrRecordNotFound so callers can match either.
	ErrNotFound = notFound{}
	// ErrStaleTransition is returned when a row is no longer in the state a
	// transition expects.
	ErrStaleTransition = errors.New("stale state transition")
)

type notFound struct{}

func (notFound) Error() string { return "record not found" }
func (notFound) Unwrap() error { return gorm.ErrRecordNotFound }

// FromRepoError maps a persistence error onto the HTTP error surfaced to
// callers.
func FromRepoError(err error, notFoundMsg, fallbackMsg string) APIError {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Errf(http.StatusRequestTimeout, "request timed out")
	case errors.Is(err, ErrInsufficientCredits):
		return Errf(http.StatusPaymentRequired, "Insufficient credits").WithCode("INSUFFICIENT_CREDITS")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Errf(http.StatusNotFound, "%s", notFoundMsg)
	case errors.Is(err, ErrStaleTransition):
		return Errf(http.StatusConflict, "%s", "resource changed, retry the request")
	default:
		return Errf(http.StatusInternalServerError, "%s", fallbackMsg)
	}
}

// CheckContext returns a 408 APIError when ctx is already done.
func CheckContext(ctx context.Context) error {
	if ctx.Err() != nil {
		return Errf(http.StatusRequestTimeout, "request timed out")
	}
	return nil
}
