package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountInactive        = errors.New("account is inactive")
	ErrUserNotFound           = errors.New("user not found")
	ErrCannotDeactivateSelf   = errors.New("admins cannot deactivate their own account")

	ErrRequestNotFound        = errors.New("quotation request not found")
	ErrRequestClosed          = errors.New("quotation request is closed")
	ErrQuotationNotFound      = errors.New("vendor quotation not found")
	ErrQuotationAlreadyExists = errors.New("vendor already submitted a quotation for this request")
	ErrInvalidTransition      = errors.New("status transition not allowed")
	ErrNoQuotations           = errors.New("request has no quotations to compare")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrValidation = errors.New("validation failed")
)

// ValidationError names the offending input field. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
