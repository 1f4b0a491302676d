package model

import "fmt"

// PromotionError is the base error for the promotion domain.
type PromotionError struct {
	Code    string
	Message string
	Err     error
}

func (e *PromotionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PromotionError) Unwrap() error {
	return e.Err
}

var ErrInvalidKind = &PromotionError{
	Code:    "INVALID_KIND",
	Message: "Promotion kind must be 'automatic' or 'coupon'",
}

var ErrCouponCodeRequired = &PromotionError{
	Code:    "COUPON_CODE_REQUIRED",
	Message: "Coupon promotions require a code",
}

var ErrInvalidDiscountType = &PromotionError{
	Code:    "INVALID_DISCOUNT_TYPE",
	Message: "Discount type must be 'percentage' or 'fixed'",
}

var ErrInvalidDiscountValue = &PromotionError{
	Code:    "INVALID_DISCOUNT_VALUE",
	Message: "Discount value must be > 0",
}

var ErrPercentageTooHigh = &PromotionError{
	Code:    "PERCENTAGE_TOO_HIGH",
	Message: "Percentage discount cannot exceed 100",
}

var ErrInvalidDateRange = &PromotionError{
	Code:    "INVALID_DATE_RANGE",
	Message: "expires_at must be after starts_at",
}

var ErrInvalidTargetType = &PromotionError{
	Code:    "INVALID_TARGET_TYPE",
	Message: "Target type must be 'product', 'category' or 'brand'",
}

func NewPromotionNotFound(id string) *PromotionError {
	return &PromotionError{
		Code:    "PROMOTION_NOT_FOUND",
		Message: fmt.Sprintf("Promotion not found: %s", id),
	}
}

func NewCouponNotFound(code string) *PromotionError {
	return &PromotionError{
		Code:    "COUPON_NOT_FOUND",
		Message: fmt.Sprintf("Coupon code not found: %s", code),
	}
}

func NewCouponNotValid(code string) *PromotionError {
	return &PromotionError{
		Code:    "COUPON_NOT_VALID",
		Message: fmt.Sprintf("Coupon code is not currently valid: %s", code),
	}
}

func NewRepositoryError(op string, err error) *PromotionError {
	return &PromotionError{
		Code:    "PROMOTION_REPOSITORY_ERROR",
		Message: fmt.Sprintf("Promotion %s failed", op),
		Err:     err,
	}
}
