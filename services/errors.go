package services

import (
	"errors"
	"fmt"

	"shawon-burger/database"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUnverified         = errors.New("Account not verified. A new verification code has been sent to your email")
	ErrAlreadyVerified    = errors.New("Account already verified")
	ErrInvalidOTP         = errors.New("Invalid OTP")
	ErrOTPExpired         = errors.New("OTP has expired")
	ErrReviewExists       = errors.New("You have already reviewed this order")
	ErrReviewLocked       = errors.New("Reviews can only be updated within 24 hours of posting")
	ErrEmailDelivery      = errors.New("failed to send verification email")
)

// ValidationError marks caller-correctable input problems.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// notFound maps the store sentinel to ErrNotFound with a readable subject.
func notFound(err error, what string) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}
