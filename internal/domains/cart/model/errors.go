package model

import "fmt"

// CartError is the base error for the cart domain.
type CartError struct {
	Code    string
	Message string
	Err     error
}

func (e *CartError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CartError) Unwrap() error {
	return e.Err
}

var ErrEmptyCart = &CartError{
	Code:    "EMPTY_CART",
	Message: "Cart has no items",
}

var ErrInvalidQuantity = &CartError{
	Code:    "INVALID_QUANTITY",
	Message: "Quantity must be positive",
}

var ErrInvalidBasePrice = &CartError{
	Code:    "INVALID_BASE_PRICE",
	Message: "Base price must not be negative",
}

func NewItemNotFound(id string) *CartError {
	return &CartError{
		Code:    "CART_ITEM_NOT_FOUND",
		Message: fmt.Sprintf("Cart item not found: %s", id),
	}
}

func NewVariantUnavailable(sku string) *CartError {
	return &CartError{
		Code:    "VARIANT_UNAVAILABLE",
		Message: fmt.Sprintf("Variant is not available: %s", sku),
	}
}

func NewRepositoryError(op string, err error) *CartError {
	return &CartError{
		Code:    "CART_REPOSITORY_ERROR",
		Message: fmt.Sprintf("Cart %s failed", op),
		Err:     err,
	}
}
