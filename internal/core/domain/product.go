package domain

const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Product is a read-only snapshot of a catalog entry as served by the
// backend. The cart stores a copy taken at add-to-cart time; later price or
// stock changes on the server do not touch lines already in the cart.
type Product struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
	Status      string  `json:"status"`
	Category    string  `json:"category,omitempty"`
}
