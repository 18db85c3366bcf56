package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Vedantb04/Clothera/internal/domain"
)

func line(id string, price string, discount, qty int) domain.CartLine {
	return domain.CartLine{
		Product: domain.Product{
			ID:       id,
			Price:    decimal.RequireFromString(price),
			Discount: discount,
		},
		Quantity: qty,
	}
}

func TestCalculate_AddSameProductTwice(t *testing.T) {
	// Scenario A: {id:"p1", price:100, discount:0} with quantity 2.
	lines := []domain.CartLine{line("p1", "100", 0, 2)}

	s := Calculate(lines, nil)

	assert.True(t, s.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal %s", s.Subtotal)
	assert.True(t, s.CartTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, s.ProductDiscountTotal.IsZero())
	assert.True(t, s.ShippingCost.IsZero(), "200 is above the free shipping threshold")
	assert.True(t, s.GrandTotal.Equal(decimal.NewFromInt(200)))
}

func TestCalculate_ShippingBelowThreshold(t *testing.T) {
	// Scenario B: subtotal 40 is under the 50 threshold.
	lines := []domain.CartLine{line("p1", "40", 0, 1)}

	s := Calculate(lines, nil)

	assert.True(t, s.ShippingCost.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, s.GrandTotal.Equal(decimal.RequireFromString("49.99")))
}

func TestCalculate_PercentageCoupon(t *testing.T) {
	// Scenario C: 10% off a 200 cart.
	lines := []domain.CartLine{line("p1", "100", 0, 2)}
	coupon := &domain.Coupon{Code: "SAVE10", Type: domain.DiscountPercentage, Amount: decimal.NewFromInt(10)}

	s := Calculate(lines, coupon)

	assert.True(t, s.CouponDiscount.Equal(decimal.NewFromInt(20)))
	assert.True(t, s.ShippingCost.IsZero())
	assert.True(t, s.GrandTotal.Equal(decimal.NewFromInt(180)))
}

func TestCalculate_FixedCouponOvershoot(t *testing.T) {
	// Scenario D: a 500 fixed coupon on a 30 cart floors the merchandise
	// portion at zero; shipping is still owed.
	lines := []domain.CartLine{line("p1", "30", 0, 1)}
	coupon := &domain.Coupon{Code: "BIG", Type: domain.DiscountFixed, Amount: decimal.NewFromInt(500)}

	s := Calculate(lines, coupon)

	// The discount reports the coupon's face value, deliberately not
	// clamped to the cart total.
	assert.True(t, s.CouponDiscount.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.ShippingCost.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, s.GrandTotal.Equal(decimal.RequireFromString("9.99")))
}

func TestCalculate_ProductDiscountIdentity(t *testing.T) {
	lines := []domain.CartLine{
		line("p1", "19.99", 25, 3),
		line("p2", "7.50", 0, 1),
		line("p3", "120", 70, 2),
	}

	s := Calculate(lines, nil)

	// subtotal - productDiscountTotal == cartTotal, exactly.
	assert.True(t, s.Subtotal.Sub(s.ProductDiscountTotal).Equal(s.CartTotal))
	assert.True(t, s.GrandTotal.GreaterThanOrEqual(s.ShippingCost))
}

func TestCalculate_ShippingThresholdIgnoresCoupon(t *testing.T) {
	// 60 cart with a 20 fixed coupon still ships free: the threshold is
	// checked before the coupon is applied.
	lines := []domain.CartLine{line("p1", "60", 0, 1)}
	coupon := &domain.Coupon{Code: "FLAT20", Type: domain.DiscountFixed, Amount: decimal.NewFromInt(20)}

	s := Calculate(lines, coupon)

	assert.True(t, s.ShippingCost.IsZero())
	assert.True(t, s.GrandTotal.Equal(decimal.NewFromInt(40)))
}

func TestCalculate_ExactlyAtThresholdPaysShipping(t *testing.T) {
	// The threshold is strict: free shipping starts above 50, not at 50.
	lines := []domain.CartLine{line("p1", "50", 0, 1)}

	s := Calculate(lines, nil)

	assert.True(t, s.ShippingCost.Equal(ShippingFee))
}

func TestCalculate_EmptyCart(t *testing.T) {
	s := Calculate(nil, nil)

	assert.True(t, s.Subtotal.IsZero())
	assert.True(t, s.ShippingCost.IsZero(), "an empty cart owes nothing, shipping included")
	assert.True(t, s.GrandTotal.IsZero())
}

func TestCalculate_DiscountedPriceFullPrecision(t *testing.T) {
	// 19.99 at 15% off is 16.9915; no intermediate rounding.
	lines := []domain.CartLine{line("p1", "19.99", 15, 1)}

	s := Calculate(lines, nil)

	assert.True(t, s.CartTotal.Equal(decimal.RequireFromString("16.9915")), "got %s", s.CartTotal)
	assert.True(t, s.Subtotal.Sub(s.ProductDiscountTotal).Equal(s.CartTotal))
}

func TestCouponDiscount_NoCoupon(t *testing.T) {
	assert.True(t, CouponDiscount(decimal.NewFromInt(100), nil).IsZero())
}
