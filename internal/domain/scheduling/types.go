package scheduling

import "errors"

var (
	ErrInvalidRating         = errors.New("rating must be between 0 and 2")
	ErrEmptyIdempotencyKey   = errors.New("idempotency key cannot be empty")
	ErrIdempotencyKeyTooLong = errors.New("idempotency key exceeds maximum length")
)
