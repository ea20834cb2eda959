package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Review errors
	ErrReviewLogNotFound = errors.New("review log not found")
	ErrScheduleNotFound  = errors.New("card schedule not found")

	// Idempotency errors
	ErrIdempotencyConflict = errors.New("concurrent request with same idempotency key")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
