package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Tour errors
	ErrTourNotFound      = errors.New("tour not found")
	ErrDepartureNotFound = errors.New("departure not found")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrDateUnavailable     = errors.New("departure date unavailable")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidParticipants = errors.New("invalid participant counts")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrUnknownPromoCode = errors.New("unknown promo code")

	// Credential errors
	ErrCredentialNotFound = errors.New("credential not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
