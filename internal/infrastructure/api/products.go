package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wholesalemart/orderdesk/internal/core/domain"
	"github.com/wholesalemart/orderdesk/internal/core/ports"
)

// PublicCatalog lists active products for the retailer storefront.
func (c *Client) PublicCatalog(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, epCatalogPublic, http.MethodGet, "/products/catalog/public", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AdminCatalog lists every product, active or not, for management views.
func (c *Client) AdminCatalog(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, epCatalogAdmin, http.MethodGet, "/products/manage/admin", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a catalog entry and returns the server's copy.
func (c *Client) CreateProduct(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, epProductCreate, http.MethodPost, "/products/", nil, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update; nil fields are left untouched.
func (c *Client) UpdateProduct(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, epProductUpdate, http.MethodPut, "/products/"+id, nil, update, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, epProductDelete, http.MethodDelete, "/products/"+id, nil, nil, nil)
}

// SetProductStatus toggles a product's storefront visibility.
func (c *Client) SetProductStatus(ctx context.Context, id, status string) (*domain.Product, error) {
	query := url.Values{"status": []string{status}}
	var product domain.Product
	if err := c.do(ctx, epProductStatus, http.MethodPatch, "/products/"+id+"/status", query, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
