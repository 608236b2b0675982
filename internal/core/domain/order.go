package domain

import "errors"

// OrderStatus represents the lifecycle state of an order as reported by the
// backend. The client only reads it, but the admin status command uses the
// transition table for a fast pre-check before calling the server.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// delivered and cancelled are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped},
	OrderShipped:    {OrderDelivered},
}

var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// OrderLine is a single item of a placed order, priced at order time.
type OrderLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a read-only view of a placed order. CreatedAt is kept as the
// server-issued string; the client renders it and never does arithmetic on it.
type Order struct {
	ID            string      `json:"id"`
	ReadableID    *int        `json:"readableId,omitempty"`
	UserID        string      `json:"userId"`
	CustomerPhone string      `json:"customerPhone,omitempty"`
	Items         []OrderLine `json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	CreatedAt     string      `json:"createdAt"`
}
