package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Brand represents a product brand.
type Brand struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Category represents a catalog category; ParentID builds the tree.
type Category struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Slug      string     `json:"slug" db:"slug"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty" db:"parent_id"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Product represents a sellable product. Purchases always go through one of
// its variants.
type Product struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Slug        string     `json:"slug" db:"slug"`
	Description *string    `json:"description,omitempty" db:"description"`
	BrandID     *uuid.UUID `json:"brand_id,omitempty" db:"brand_id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty" db:"category_id"`

	BasePrice decimal.Decimal `json:"base_price" db:"base_price"`
	CoverURL  *string         `json:"cover_url,omitempty" db:"cover_url"`
	IsActive  bool            `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Variant is a purchasable color/size combination of a product, with an
// optional price override and its own stock count.
type Variant struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`

	SKU   string  `json:"sku" db:"sku"`
	Color *string `json:"color,omitempty" db:"color"`
	Size  *string `json:"size,omitempty" db:"size"`

	PriceOverride *decimal.Decimal `json:"price_override,omitempty" db:"price_override"`
	Stock         int              `json:"stock" db:"stock"`
	ImageURL      *string          `json:"image_url,omitempty" db:"image_url"`
	IsActive      bool             `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// VariantWithProduct joins a variant with the catalog data pricing needs.
type VariantWithProduct struct {
	Variant
	ProductName       string          `db:"product_name"`
	ProductSlug       string          `db:"product_slug"`
	ProductBasePrice  decimal.Decimal `db:"product_base_price"`
	ProductBrandID    *uuid.UUID      `db:"product_brand_id"`
	ProductCategoryID *uuid.UUID      `db:"product_category_id"`
	ProductIsActive   bool            `db:"product_is_active"`
}

// EffectivePrice returns the variant price override when present, otherwise
// the product base price. This is the value frozen into cart and order lines.
func (v *VariantWithProduct) EffectivePrice() decimal.Decimal {
	if v.PriceOverride != nil {
		return *v.PriceOverride
	}
	return v.ProductBasePrice
}

// InStock reports whether the variant can cover the requested quantity.
func (v *Variant) InStock(quantity int) bool {
	return v.IsActive && v.Stock >= quantity
}
