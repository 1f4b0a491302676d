package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the admin request to create a product with its
// initial variants.
type CreateProductRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	BrandID     *uuid.UUID `json:"brand_id"`
	CategoryID  *uuid.UUID `json:"category_id"`
	BasePrice   string     `json:"base_price"`

	Variants []CreateVariantRequest `json:"variants"`
}

type CreateVariantRequest struct {
	SKU           string  `json:"sku"`
	Color         *string `json:"color"`
	Size          *string `json:"size"`
	PriceOverride *string `json:"price_override"`
	Stock         int     `json:"stock"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.BasePrice, validation.Required, validation.By(validatePositiveDecimal)),
		validation.Field(&r.Variants, validation.Required),
	)
}

func (r CreateVariantRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SKU, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Stock, validation.Min(0)),
	)
}

type UpdateProductRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	BrandID     *uuid.UUID `json:"brand_id"`
	CategoryID  *uuid.UUID `json:"category_id"`
	BasePrice   *string    `json:"base_price"`
	IsActive    *bool      `json:"is_active"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(2, 200)),
		validation.Field(&r.BasePrice, validation.By(validateOptionalPositiveDecimal)),
	)
}

func validatePositiveDecimal(value interface{}) error {
	s, _ := value.(string)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ErrInvalidPrice
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrice
	}
	return nil
}

func validateOptionalPositiveDecimal(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	return validatePositiveDecimal(*s)
}

// ProductResponse is the public product view with its variants.
type ProductResponse struct {
	Product
	Variants []Variant `json:"variants"`
}

// BulkImportResult summarizes an xlsx product import.
type BulkImportResult struct {
	TotalRows int      `json:"total_rows"`
	Imported  int      `json:"imported"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}
