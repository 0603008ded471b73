package domain

import "github.com/go-faster/errors"

// Common errors returned by products and promotions
var (
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOrderLimitExceeded = errors.New("order limit exceeded")
)

func invalidParameter(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
