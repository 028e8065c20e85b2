package field

import "github.com/pkg/errors"

var (
	ErrInvalidSize       = errors.New("field size must be positive")
	ErrTooManyMines      = errors.New("more mines than cells")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
