package domain

// CartLine is one product selection pending checkout. The embedded Product is
// a snapshot captured when the line was added, not a live catalog reference.
// The "id" JSON key duplicates the product id so a persisted cart keeps the
// same shape the backend order endpoints expect for line identity.
type CartLine struct {
	ProductID string  `json:"id"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
}

// Cart is the ordered sequence of selections. Lines are unique per product id
// and every quantity is at least 1; the cart services enforce both across all
// mutations.
type Cart []CartLine

// Total is the sum of price x quantity over all lines. It is recomputed on
// every call so it can never drift from the lines themselves.
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// Count is the sum of quantities over all lines, recomputed on every call.
func (c Cart) Count() int {
	var count int
	for _, line := range c {
		count += line.Quantity
	}
	return count
}

// Find returns the index of the line holding productID, or -1.
func (c Cart) Find(productID string) int {
	for i, line := range c {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
