package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TargetRequest is the wire form of a targeting rule.
type TargetRequest struct {
	Type     string    `json:"type"`
	TargetID uuid.UUID `json:"target_id"`
}

func (r TargetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In(
			string(TargetProduct), string(TargetCategory), string(TargetBrand))),
		validation.Field(&r.TargetID, validation.Required, validation.By(func(v interface{}) error {
			if id, ok := v.(uuid.UUID); !ok || id == uuid.Nil {
				return ErrInvalidTargetType
			}
			return nil
		})),
	)
}

// CreatePromotionRequest creates an automatic promotion or coupon.
type CreatePromotionRequest struct {
	Kind          string          `json:"kind"`
	Code          *string         `json:"code"`
	Name          string          `json:"name"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue string          `json:"discount_value"`
	Priority      int             `json:"priority"`
	Targets       []TargetRequest `json:"targets"`
	StartsAt      time.Time       `json:"starts_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
	IsActive      bool            `json:"is_active"`
}

func (r CreatePromotionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.Required, validation.In(
			string(KindAutomatic), string(KindCoupon))),
		validation.Field(&r.Name, validation.Required, validation.Length(3, 200)),
		validation.Field(&r.DiscountType, validation.Required, validation.In(
			string(DiscountTypePercentage), string(DiscountTypeFixed))),
		validation.Field(&r.DiscountValue, validation.Required),
		validation.Field(&r.StartsAt, validation.Required),
		validation.Field(&r.ExpiresAt, validation.Required),
	)
}

// ToModel converts the request into a Promotion entity.
func (r CreatePromotionRequest) ToModel() (*Promotion, error) {
	value, err := decimal.NewFromString(r.DiscountValue)
	if err != nil {
		return nil, ErrInvalidDiscountValue
	}

	p := &Promotion{
		Kind:          Kind(r.Kind),
		Name:          strings.TrimSpace(r.Name),
		DiscountType:  DiscountType(r.DiscountType),
		DiscountValue: value,
		Priority:      r.Priority,
		StartsAt:      r.StartsAt,
		ExpiresAt:     r.ExpiresAt,
		IsActive:      r.IsActive,
	}

	if r.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*r.Code))
		p.Code = &code
	}

	for _, tr := range r.Targets {
		if err := tr.Validate(); err != nil {
			return nil, err
		}
		p.Targets = append(p.Targets, Target{
			Type:     TargetType(tr.Type),
			TargetID: tr.TargetID,
		})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}
