package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Vedantb04/Clothera/internal/domain"
)

// ErrUnknownCode is returned for codes that resolve to nothing. It is a
// user-facing validation failure, never a cart error.
var ErrUnknownCode = errors.New("unknown coupon code")

// validCoupons is the static table of redeemable codes.
var validCoupons = map[string]domain.Coupon{
	"SAVE10":    {Code: "SAVE10", Type: domain.DiscountPercentage, Amount: decimal.NewFromInt(10)},
	"WELCOME20": {Code: "WELCOME20", Type: domain.DiscountPercentage, Amount: decimal.NewFromInt(20)},
	"FLAT5":     {Code: "FLAT5", Type: domain.DiscountFixed, Amount: decimal.NewFromInt(5)},
}

// Resolve looks a user-entered code up in the coupon table. Codes are
// case-insensitive and surrounding whitespace is ignored.
func Resolve(code string) (domain.Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	c, ok := validCoupons[normalized]
	if !ok {
		return domain.Coupon{}, ErrUnknownCode
	}
	return c, nil
}
