package model

import "fmt"

// AddressError is the base error for the address domain.
type AddressError struct {
	Code    string
	Message string
	Err     error
}

func (e *AddressError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

func NewAddressNotFound(id string) *AddressError {
	return &AddressError{
		Code:    "ADDRESS_NOT_FOUND",
		Message: fmt.Sprintf("Address not found: %s", id),
	}
}

func NewRepositoryError(op string, err error) *AddressError {
	return &AddressError{
		Code:    "ADDRESS_REPOSITORY_ERROR",
		Message: fmt.Sprintf("Address %s failed", op),
		Err:     err,
	}
}
