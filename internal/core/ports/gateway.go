package ports

import (
	"context"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
)

// ProductInput is the payload for creating a catalog product.
type ProductInput struct {
	SKU         string  `json:"sku" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Status      string  `json:"status" validate:"oneof=active inactive"`
	Category    string  `json:"category" validate:"required"`
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Category    *string  `json:"category,omitempty"`
}

// OrderItemInput is one line of an order placement request. The wire keys are
// snake_case because the backend accepts them in that shape only.
type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// DashboardKPIs is the headline numbers block of the admin dashboard.
type DashboardKPIs struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	PendingOrders  int     `json:"pendingOrders"`
	ActiveProducts int     `json:"activeProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	LowStockCount  int     `json:"lowStockCount"`
}

// RecentOrder is a condensed order row for the dashboard.
type RecentOrder struct {
	ID         string  `json:"id"`
	ReadableID *int    `json:"readableId,omitempty"`
	Customer   string  `json:"customer"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// LowStockItem is an active product whose stock dropped below the backend's
// alert threshold.
type LowStockItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

// RevenuePoint is one day of the revenue trend series.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats is the admin KPI summary.
type DashboardStats struct {
	KPIs          DashboardKPIs  `json:"kpis"`
	RecentOrders  []RecentOrder  `json:"recentOrders"`
	LowStockItems []LowStockItem `json:"lowStockItems"`
	RevenueTrend  []RevenuePoint `json:"revenueTrend"`
}

// AuthAPI covers both login flows. Admins authenticate with email/password;
// customers with a two-step phone/OTP exchange that auto-registers new
// accounts server-side. All three return only a bearer token; profile data is
// composed client-side.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) (string, error)
}

// ProductAPI covers catalog reads and admin product management.
type ProductAPI interface {
	PublicCatalog(ctx context.Context) ([]domain.Product, error)
	AdminCatalog(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SetProductStatus(ctx context.Context, id, status string) (*domain.Product, error)
}

// OrderAPI covers order placement and tracking. Listing is role-scoped by the
// server: admins see all orders, customers only their own.
type OrderAPI interface {
	Orders(ctx context.Context) ([]domain.Order, error)
	PlaceOrder(ctx context.Context, items []OrderItemInput) (*domain.Order, error)
	SetOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// DashboardAPI serves the admin KPI summary.
type DashboardAPI interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// Gateway is the full REST surface the client consumes.
type Gateway interface {
	AuthAPI
	ProductAPI
	OrderAPI
	DashboardAPI
}
