package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// ListProducts GET /api/admin/products.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, "/api/admin/products", &out, "products"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct POST /api/admin/products. El payload ya llega validado por
// el Catalog Manager; aquí no se revalida nada.
func (c *Client) CreateProduct(ctx context.Context, payload dto.ProductPayload) error {
	return c.do(ctx, http.MethodPost, "/api/admin/products", payload, nil, "products")
}

// UpdateProduct PUT /api/admin/products/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id int64, payload dto.ProductPayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/products/%d", id), payload, nil, "products")
}

// DeleteProduct DELETE /api/admin/products/{id}. Irreversible; la compuerta
// de confirmación vive en el Catalog Manager, no aquí.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", id), nil, nil, "products")
}

// ListOrders GET /api/admin/orders.
func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := c.get(ctx, "/api/admin/orders", &out, "orders"); err != nil {
		return nil, err
	}
	return out, nil
}

// SetOrderStatus PUT /api/admin/orders/{id}/status con cuerpo {status}.
func (c *Client) SetOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	body := dto.StatusUpdateRequest{Status: string(status)}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/orders/%d/status", id), body, nil, "orders")
}

// ListCartItems GET /api/admin/carts.
func (c *Client) ListCartItems(ctx context.Context) ([]entity.CartItem, error) {
	var out []entity.CartItem
	if err := c.get(ctx, "/api/admin/carts", &out, "carts"); err != nil {
		return nil, err
	}
	return out, nil
}

// SetCartItemStatus PUT /api/admin/cart/{id}/status con cuerpo {status}.
// Ojo: la ruta del backend usa "cart" en singular.
func (c *Client) SetCartItemStatus(ctx context.Context, id int64, status entity.CartStatus) error {
	body := dto.StatusUpdateRequest{Status: string(status)}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/cart/%d/status", id), body, nil, "carts")
}

// ListCustomers GET /api/admin/customers.
func (c *Client) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	if err := c.get(ctx, "/api/admin/customers", &out, "customers"); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchSummary GET /api/admin/summary. El snapshot no se cachea: cada carga
// del dashboard es una lectura fresca.
func (c *Client) FetchSummary(ctx context.Context) (*entity.Summary, error) {
	var out entity.Summary
	if err := c.get(ctx, "/api/admin/summary", &out, "summary"); err != nil {
		return nil, err
	}
	return &out, nil
}
