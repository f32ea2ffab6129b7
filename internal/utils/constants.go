package utils

import "time"

// Application Constants
const (
	AppName    = "Courtside"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "IDR"
	DefaultTimeZone = "Asia/Jakarta"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Booking Constants
	MinBookingHours = 1
	MaxBookingHours = 12
	DaysPerWeek     = 7

	// Cache TTLs
	CourtCacheTTL = 5 * time.Minute
	PromoCacheTTL = 1 * time.Minute

	// Notification
	MailRequestTimeout = 15 * time.Second
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrInvalidToken       = "invalid token"
	ErrTokenExpired       = "token expired"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrNotFound           = "not found"
	ErrConflict           = "conflict"
	ErrValidationFailed   = "validation failed"
	ErrCourtNotFound      = "court not found"
	ErrBookingNotFound    = "booking not found"
	ErrAdminNotFound      = "admin not found"
)

// Cache Keys
const (
	CacheCourtPrefix   = "court:"
	CacheActiveCourts  = "courts:active"
	CachePromoPrefix   = "promo:"
	CacheSessionPrefix = "session:"
)

// Event Types
const (
	EventBookingCreated   = "booking_created"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingRejected  = "booking_rejected"
	EventBookingReopened  = "booking_reopened"
)
