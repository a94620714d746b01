package service

import "errors"

// Error kinds. Every error a service returns on purpose wraps one of them,
// anything else is an internal failure.
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrExpired         = errors.New("expired")
	ErrTooManyAttempts = errors.New("too many attempts")
)

// Error is a service error with a message safe to show to the client.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

func newError(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

func validationError(message string) *Error {
	return newError(ErrValidation, message)
}

var (
	ErrMissingDetails       = validationError("missing details")
	ErrUserAlreadyExist     = newError(ErrConflict, "user already exists")
	ErrInvalidCredentials   = newError(ErrUnauthorized, "invalid credentials")
	ErrUserNotFound         = newError(ErrNotFound, "user not found")
	ErrAccountVerified      = validationError("account already verified")
	ErrInvalidOtp           = validationError("invalid otp")
	ErrOtpExpired           = newError(ErrExpired, "otp expired")
	ErrOtpLocked            = newError(ErrTooManyAttempts, "too many invalid attempts, try again later")
	ErrReservationNotFound  = newError(ErrNotFound, "reservation not found")
	ErrInvalidStay          = validationError("check-out date must be after check-in date")
	ErrInvalidStatus        = validationError("status must be one of pending, confirmed, cancelled")
	ErrReviewNotFound       = newError(ErrNotFound, "review not found")
	ErrInvalidRating        = validationError("rating must be an integer between 1 and 5")
	ErrHotelNotFound        = newError(ErrNotFound, "hotel not found")
	ErrBookingNotFound      = newError(ErrUnauthorized, "no reservation found for this booking number and pin")
	ErrAdminOnly            = newError(ErrForbidden, "admin access required")
	ErrVoucherNotConfigured = errors.New("voucher generator is not configured")
)
