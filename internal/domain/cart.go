package domain

// CartLine is one product-to-quantity entry in the cart. A cart holds at
// most one line per product id; quantity is always >= 1 (a line driven to
// zero is removed, not kept).
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CloneLines returns a copy of the line slice so callers can hold a
// stable view while the cart keeps mutating.
func CloneLines(lines []CartLine) []CartLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
