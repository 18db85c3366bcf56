package domain

import "github.com/shopspring/decimal"

// Product is a read-only catalog record. The cart keeps snapshots of
// products, it never mutates them.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Price    decimal.Decimal `json:"price"`
	Discount int             `json:"discount"` // percent, 0-100
	Rating   int             `json:"rating"`   // 0-5
	Category string          `json:"category"`
	Tags     []string        `json:"tags"`
	Image    string          `json:"image"`
}

// EffectivePrice is the unit price after the product-level percentage
// markdown. Arithmetic stays in full precision; rounding happens only
// when a price is rendered.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.Discount <= 0 {
		return p.Price
	}
	factor := decimal.NewFromInt(100 - int64(p.Discount)).Div(decimal.NewFromInt(100))
	return p.Price.Mul(factor)
}
