package cart

import "github.com/Vedantb04/Clothera/internal/domain"

// command is the closed set of cart transitions. Every mutation goes
// through apply so the invariants (one line per product id, quantity >= 1,
// stable insertion order) are enforced in exactly one place.
type command interface {
	isCommand()
}

type addLine struct {
	product domain.Product
}

type removeLine struct {
	productID string
}

type setQuantity struct {
	productID string
	quantity  int
}

type clearLines struct{}

type loadLines struct {
	lines []domain.CartLine
}

func (addLine) isCommand()     {}
func (removeLine) isCommand()  {}
func (setQuantity) isCommand() {}
func (clearLines) isCommand()  {}
func (loadLines) isCommand()   {}

// apply transitions the line sequence for one command. It returns the new
// sequence and whether anything changed; callers only persist when it did.
// The input slice is never mutated.
func apply(lines []domain.CartLine, cmd command) ([]domain.CartLine, bool) {
	switch c := cmd.(type) {
	case addLine:
		for i, l := range lines {
			if l.Product.ID == c.product.ID {
				next := domain.CloneLines(lines)
				next[i].Quantity++
				return next, true
			}
		}
		return append(domain.CloneLines(lines), domain.CartLine{Product: c.product, Quantity: 1}), true

	case removeLine:
		return deleteLine(lines, c.productID)

	case setQuantity:
		if c.quantity <= 0 {
			return deleteLine(lines, c.productID)
		}
		for i, l := range lines {
			if l.Product.ID == c.productID {
				if l.Quantity == c.quantity {
					return lines, false
				}
				next := domain.CloneLines(lines)
				next[i].Quantity = c.quantity
				return next, true
			}
		}
		return lines, false

	case clearLines:
		if len(lines) == 0 {
			return lines, false
		}
		return nil, true

	case loadLines:
		return domain.CloneLines(c.lines), true

	default:
		return lines, false
	}
}

func deleteLine(lines []domain.CartLine, productID string) ([]domain.CartLine, bool) {
	for i, l := range lines {
		if l.Product.ID == productID {
			next := domain.CloneLines(lines)
			return append(next[:i], next[i+1:]...), true
		}
	}
	return lines, false
}
