package model

import "fmt"

// PhoneError is the base error for the phone domain.
type PhoneError struct {
	Code    string
	Message string
	Err     error
}

func (e *PhoneError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PhoneError) Unwrap() error {
	return e.Err
}

var ErrInvalidPhoneNumber = &PhoneError{
	Code:    "INVALID_PHONE_NUMBER",
	Message: "Phone number must be a valid Vietnamese number",
}

var ErrDuplicateNumber = &PhoneError{
	Code:    "DUPLICATE_PHONE_NUMBER",
	Message: "Phone number is already registered",
}

func NewPhoneNotFound(id string) *PhoneError {
	return &PhoneError{
		Code:    "PHONE_NOT_FOUND",
		Message: fmt.Sprintf("Phone not found: %s", id),
	}
}

func NewRepositoryError(op string, err error) *PhoneError {
	return &PhoneError{
		Code:    "PHONE_REPOSITORY_ERROR",
		Message: fmt.Sprintf("Phone %s failed", op),
		Err:     err,
	}
}
