package ports

import (
	"context"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
)

// CartService maintains the working selection of products to purchase,
// independent of login state, surviving restarts. Every mutation synchronously
// re-serializes the cart to the store; productID uniqueness and quantity >= 1
// hold after every operation.
type CartService interface {
	// Restore loads the persisted cart. Corrupt persisted data resets to an
	// empty cart and is purged, never surfaced as an error.
	Restore(ctx context.Context)

	// Add appends a new line with a snapshot of product, or increments the
	// existing line's quantity. quantity <= 0 is rejected with
	// domain.ErrInvalidQuantity.
	Add(ctx context.Context, product domain.Product, quantity int) error

	// UpdateQuantity sets a line's quantity to exactly quantity; <= 0 removes
	// the line. No-op when productID is absent.
	UpdateQuantity(ctx context.Context, productID string, quantity int) error

	// Remove deletes the line if present; no-op otherwise.
	Remove(ctx context.Context, productID string) error

	// Clear empties all lines.
	Clear(ctx context.Context) error

	// Lines returns the current lines in insertion order.
	Lines() domain.Cart

	Total() float64
	Count() int
}
