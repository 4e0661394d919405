package cart

import (
	"allergysafe-be/internal/catalog"
	"allergysafe-be/internal/money"
)

// LineItem pairs a catalog product with the quantity in the cart. The cart
// holds at most one line item per product id.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the unit price times the quantity, in millimes.
func (li LineItem) Subtotal() money.Amount {
	return li.Product.Price.MulQty(li.Quantity)
}
