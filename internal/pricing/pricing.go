package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Vedantb04/Clothera/internal/domain"
)

var (
	// FreeShippingThreshold compares against the cart total after
	// product discounts but before any coupon.
	FreeShippingThreshold = decimal.NewFromInt(50)

	// ShippingFee is charged whenever the cart total does not clear the
	// free-shipping threshold.
	ShippingFee = decimal.RequireFromString("9.99")
)

// Summary carries every derived monetary value for a cart. All fields are
// recomputed from the lines on each call, nothing here is ever stored.
type Summary struct {
	Subtotal             decimal.Decimal
	ProductDiscountTotal decimal.Decimal
	CartTotal            decimal.Decimal
	CouponDiscount       decimal.Decimal
	ShippingCost         decimal.Decimal
	GrandTotal           decimal.Decimal
}

// Subtotal is the undiscounted sum of price * quantity over all lines.
func Subtotal(lines []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// CartTotal is the sum of effective (product-discounted) price * quantity.
func CartTotal(lines []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// CouponDiscount is the value of the coupon against the given cart total.
// A fixed coupon reports its face value even when it exceeds the cart
// total; only the grand total is floored at zero.
func CouponDiscount(cartTotal decimal.Decimal, coupon *domain.Coupon) decimal.Decimal {
	if coupon == nil {
		return decimal.Zero
	}
	switch coupon.Type {
	case domain.DiscountPercentage:
		return cartTotal.Mul(coupon.Amount).Div(decimal.NewFromInt(100))
	case domain.DiscountFixed:
		return coupon.Amount
	default:
		return decimal.Zero
	}
}

// ShippingCost is zero once the cart total clears the free-shipping
// threshold. The threshold is evaluated before the coupon is subtracted.
func ShippingCost(cartTotal decimal.Decimal) decimal.Decimal {
	if cartTotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return ShippingFee
}

// Calculate derives the full summary for the lines and the optional
// active coupon. The merchandise portion never goes negative: a coupon
// overshoot floors it at zero before shipping is added back.
func Calculate(lines []domain.CartLine, coupon *domain.Coupon) Summary {
	subtotal := Subtotal(lines)
	cartTotal := CartTotal(lines)
	couponDiscount := CouponDiscount(cartTotal, coupon)
	shipping := decimal.Zero
	if len(lines) > 0 {
		shipping = ShippingCost(cartTotal)
	}

	merchandise := cartTotal.Sub(couponDiscount)
	if merchandise.IsNegative() {
		merchandise = decimal.Zero
	}

	return Summary{
		Subtotal:             subtotal,
		ProductDiscountTotal: subtotal.Sub(cartTotal),
		CartTotal:            cartTotal,
		CouponDiscount:       couponDiscount,
		ShippingCost:         shipping,
		GrandTotal:           merchandise.Add(shipping),
	}
}
