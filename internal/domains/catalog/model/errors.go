package model

import (
	"fmt"
)

// CatalogError is the base error for the catalog domain.
type CatalogError struct {
	Code    string
	Message string
	Err     error
}

func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

var ErrInvalidPrice = &CatalogError{
	Code:    "INVALID_PRICE",
	Message: "Price must be a positive decimal",
}

var ErrDuplicateSKU = &CatalogError{
	Code:    "DUPLICATE_SKU",
	Message: "A variant with this SKU already exists",
}

func NewProductNotFound(id string) *CatalogError {
	return &CatalogError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: fmt.Sprintf("Product not found: %s", id),
	}
}

func NewVariantNotFound(id string) *CatalogError {
	return &CatalogError{
		Code:    "VARIANT_NOT_FOUND",
		Message: fmt.Sprintf("Variant not found: %s", id),
	}
}

func NewInsufficientStock(sku string, requested, available int) *CatalogError {
	return &CatalogError{
		Code:    "INSUFFICIENT_STOCK",
		Message: fmt.Sprintf("Insufficient stock for %s: requested %d, available %d", sku, requested, available),
	}
}

func NewRepositoryError(op string, err error) *CatalogError {
	return &CatalogError{
		Code:    "CATALOG_REPOSITORY_ERROR",
		Message: fmt.Sprintf("Catalog %s failed", op),
		Err:     err,
	}
}
