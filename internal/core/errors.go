package core

import "errors"

// Domain error taxonomy. Services wrap these sentinels with context via
// fmt.Errorf("%w: ...") and the API layer maps them to HTTP statuses exactly
// once (see internal/api/errors.go).
var (
	// ErrUnauthenticated: missing, invalid, or expired credential.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden: authenticated but not entitled (ownership violation).
	ErrForbidden = errors.New("operation not permitted")
	// ErrNotFound: the referenced record is absent.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput: client-supplied data fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPaymentNotConfigured: the payment processor credential is absent. A
	// deployment error surfaced as a request failure, since no checkout can
	// succeed without it.
	ErrPaymentNotConfigured = errors.New("payment processor is not configured")
	// ErrStorage: a key-value store call failed or returned an unexpected shape.
	ErrStorage = errors.New("storage operation failed")
	// ErrPaymentProvider: a payment-processor call failed.
	ErrPaymentProvider = errors.New("payment processor request failed")
)
