package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/core/ports"
	"github.com/wholesalemart/orderdesk/internal/metrics"
)

// CartService maintains the working selection of products to purchase. Every
// mutation synchronously re-serializes the full cart to the store; no
// batching. Carts stay small (tens of lines), so correctness wins over
// throughput here.
type CartService struct {
	store  ports.Store
	logger zerolog.Logger

	lines domain.Cart
}

var _ ports.CartService = (*CartService)(nil)

// NewCartService wires the cart to the store and subscribes it to
// session-ended: logging out forcibly drops any in-progress cart, including
// the persisted key.
func NewCartService(store ports.Store, signals *Signals, logger zerolog.Logger) *CartService {
	c := &CartService{store: store, logger: logger}
	signals.OnSessionEnded(func(ctx context.Context) {
		c.drop(ctx)
	})
	return c
}

// Restore loads the persisted cart. Corrupt persisted JSON resets to an empty
// cart and purges the key; logged, never returned.
func (c *CartService) Restore(ctx context.Context) {
	raw, ok, err := c.store.Get(ctx, ports.KeyCart)
	if err != nil {
		c.logger.Error().Err(err).Msg("cart: reading persisted cart failed")
		return
	}
	if !ok {
		return
	}

	var lines domain.Cart
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		c.logger.Error().Err(err).Msg("cart: persisted cart is corrupt")
		if err := c.store.Delete(ctx, ports.KeyCart); err != nil {
			c.logger.Error().Err(err).Msg("cart: purging corrupt cart failed")
		}
		return
	}
	c.lines = lines
}

// Add increments the existing line for product.ID or appends a new line with
// a snapshot of product, preserving insertion order for all other lines.
func (c *CartService) Add(ctx context.Context, product domain.Product, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	if i := c.lines.Find(product.ID); i >= 0 {
		c.lines[i].Quantity += quantity
	} else {
		c.lines = append(c.lines, domain.CartLine{
			ProductID: product.ID,
			Product:   product,
			Quantity:  quantity,
		})
	}
	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return c.persist(ctx)
}

// UpdateQuantity sets the line's quantity to exactly quantity (absolute set,
// not delta); quantity <= 0 removes the line. No-op when productID is absent.
func (c *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(ctx, productID)
	}

	i := c.lines.Find(productID)
	if i < 0 {
		return nil
	}
	c.lines[i].Quantity = quantity
	metrics.CartMutationsTotal.WithLabelValues("update").Inc()
	return c.persist(ctx)
}

// Remove deletes the line if present; no-op otherwise.
func (c *CartService) Remove(ctx context.Context, productID string) error {
	i := c.lines.Find(productID)
	if i < 0 {
		return nil
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return c.persist(ctx)
}

// Clear empties all lines and persists the empty cart.
func (c *CartService) Clear(ctx context.Context) error {
	c.lines = nil
	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
	return c.persist(ctx)
}

// Lines returns a copy of the current lines in insertion order.
func (c *CartService) Lines() domain.Cart {
	out := make(domain.Cart, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CartService) Total() float64 { return c.lines.Total() }
func (c *CartService) Count() int     { return c.lines.Count() }

func (c *CartService) persist(ctx context.Context) error {
	lines := c.lines
	if lines == nil {
		// An emptied cart persists as [] rather than null.
		lines = domain.Cart{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("cart: serializing cart: %w", err)
	}
	if err := c.store.Set(ctx, ports.KeyCart, string(raw)); err != nil {
		return fmt.Errorf("cart: persisting cart: %w", err)
	}
	return nil
}

// drop empties the cart and removes its persisted key entirely. Used on
// session-ended: logout removes the key rather than writing an empty cart,
// so a later restart finds no cart at all.
func (c *CartService) drop(ctx context.Context) {
	c.lines = nil
	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
	if err := c.store.Delete(ctx, ports.KeyCart); err != nil {
		c.logger.Error().Err(err).Msg("cart: dropping persisted cart failed")
	}
}
