package model

import "fmt"

// OrderError is the base error for the order domain.
type OrderError struct {
	Code    string
	Message string
	Err     error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

var ErrEmptyCart = &OrderError{
	Code:    "EMPTY_CART",
	Message: "Cannot create an order from an empty cart",
}

func NewOrderNotFound(id string) *OrderError {
	return &OrderError{
		Code:    "ORDER_NOT_FOUND",
		Message: fmt.Sprintf("Order not found: %s", id),
	}
}

func NewInvalidTransition(from, to OrderStatus) *OrderError {
	return &OrderError{
		Code:    "INVALID_STATUS_TRANSITION",
		Message: fmt.Sprintf("Cannot move order from %s to %s", from, to),
	}
}

func NewIncompleteAddress(err error) *OrderError {
	return &OrderError{
		Code:    "INCOMPLETE_ADDRESS",
		Message: "Shipping address is missing required fields",
		Err:     err,
	}
}

func NewUnavailableItem(sku string) *OrderError {
	return &OrderError{
		Code:    "ITEM_UNAVAILABLE",
		Message: fmt.Sprintf("Item is no longer available: %s", sku),
	}
}

func NewRepositoryError(op string, err error) *OrderError {
	return &OrderError{
		Code:    "ORDER_REPOSITORY_ERROR",
		Message: fmt.Sprintf("Order %s failed", op),
		Err:     err,
	}
}
