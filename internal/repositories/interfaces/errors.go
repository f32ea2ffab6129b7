package interfaces

import "errors"

// Sentinel errors returned by repository implementations so callers can tell
// a missing record apart from a transport failure.
var (
	ErrCourtNotFound   = errors.New("court not found")
	ErrPromoNotFound   = errors.New("promo not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAdminNotFound   = errors.New("admin not found")
)
