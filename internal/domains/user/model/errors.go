package model

import "fmt"

// UserError is the base error for the user domain.
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

var ErrOTPExpired = &UserError{
	Code:    "OTP_EXPIRED",
	Message: "OTP has expired or was never requested",
}

var ErrOTPInvalid = &UserError{
	Code:    "OTP_INVALID",
	Message: "OTP code is incorrect",
}

var ErrOTPTooManyAttempts = &UserError{
	Code:    "OTP_TOO_MANY_ATTEMPTS",
	Message: "Too many failed OTP attempts; request a new code",
}

var ErrInvalidRefreshToken = &UserError{
	Code:    "INVALID_REFRESH_TOKEN",
	Message: "Refresh token is invalid or expired",
}

var ErrAccountDisabled = &UserError{
	Code:    "ACCOUNT_DISABLED",
	Message: "Account has been disabled",
}

func NewUserNotFound(id string) *UserError {
	return &UserError{
		Code:    "USER_NOT_FOUND",
		Message: fmt.Sprintf("User not found: %s", id),
	}
}

func NewRepositoryError(op string, err error) *UserError {
	return &UserError{
		Code:    "USER_REPOSITORY_ERROR",
		Message: fmt.Sprintf("User %s failed", op),
		Err:     err,
	}
}
