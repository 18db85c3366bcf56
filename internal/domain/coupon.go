package domain

import "github.com/shopspring/decimal"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is a resolved coupon code. At most one coupon is active on a
// cart at a time; applying a new one replaces the old one.
type Coupon struct {
	Code   string          `json:"code"`
	Type   DiscountType    `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}
