package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/core/ports"
)

// orderItemWire is an order line as the backend serializes it.
type orderItemWire struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// orderWire is an order as the backend serializes it: snake_case field names
// that must be renamed into the domain shape before reaching any view.
type orderWire struct {
	ID            string          `json:"id" validate:"required"`
	ReadableID    *int            `json:"readable_id"`
	UserID        string          `json:"user_id"`
	CustomerPhone string          `json:"customer_phone"`
	Items         []orderItemWire `json:"items"`
	Total         float64         `json:"total"`
	Status        string          `json:"status" validate:"required"`
	CreatedAt     string          `json:"created_at"`
}

// toOrder renames every known wire field into the domain shape. The mapping
// is total: same-named fields carry over unchanged, snake_case names are
// translated one by one.
func toOrder(w orderWire) domain.Order {
	items := make([]domain.OrderLine, len(w.Items))
	for i, item := range w.Items {
		items[i] = domain.OrderLine{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}
	return domain.Order{
		ID:            w.ID,
		ReadableID:    w.ReadableID,
		UserID:        w.UserID,
		CustomerPhone: w.CustomerPhone,
		Items:         items,
		Total:         w.Total,
		Status:        domain.OrderStatus(w.Status),
		CreatedAt:     w.CreatedAt,
	}
}

type orderCreateRequest struct {
	Items []ports.OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// Orders lists orders for the current identity. The server scopes the result
// by role: admins see everything, customers only their own.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var wire []orderWire
	if err := c.do(ctx, epOrdersList, http.MethodGet, "/orders/", nil, nil, &wire); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, len(wire))
	for i, w := range wire {
		orders[i] = toOrder(w)
	}
	return orders, nil
}

// PlaceOrder submits the cart's lines as a new order. An in-flight guard
// rejects a second submission while one is outstanding, and an idempotency
// key lets the server drop retries that still race through.
func (c *Client) PlaceOrder(ctx context.Context, items []ports.OrderItemInput) (*domain.Order, error) {
	if !c.orderInFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrOrderInFlight
	}
	defer c.orderInFlight.Store(false)

	var wire orderWire
	if err := c.doWithHeaders(ctx, epOrderCreate, http.MethodPost, "/orders/", nil,
		orderCreateRequest{Items: items}, &wire,
		map[string]string{"Idempotency-Key": uuid.NewString()}); err != nil {
		return nil, err
	}
	order := toOrder(wire)
	return &order, nil
}

// SetOrderStatus asks the server to advance an order. The transition table is
// checked client-side first to fail fast on impossible moves; the server
// remains authoritative.
func (c *Client) SetOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	query := url.Values{"status": []string{string(status)}}
	var wire orderWire
	if err := c.do(ctx, epOrderStatus, http.MethodPut, "/orders/"+id+"/status", query, nil, &wire); err != nil {
		return nil, err
	}
	order := toOrder(wire)
	return &order, nil
}
