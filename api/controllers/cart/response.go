package cart

import cartsvc "github.com/angelmondragon/shopcart-backend/internal/cart"

const (
	statusAdded   = "added to cart"
	statusUpdated = "quantity updated"
	statusDeleted = "deleted from cart"
)

func newCartLines(lines []cartsvc.Line) []cartsvc.Line {
	if lines == nil {
		return []cartsvc.Line{}
	}
	return lines
}
