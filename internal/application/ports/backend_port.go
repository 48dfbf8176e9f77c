// Package ports define los contratos que la capa de aplicación espera de la
// infraestructura.
package ports

import (
	"context"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// CommerceBackend cliente tipado del backend de comercio (/api/admin).
//
// Cada método es exactamente un viaje de ida y vuelta, sin reintentos.
// Errores estructurales: domain.ErrUnauthorized (401/403, el llamador debe
// señalar redirección a login), *domain.ServerError (4xx/5xx con cuerpo),
// *domain.TransportError (fallo de red), *domain.DecodeError (JSON ilegible).
type CommerceBackend interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, payload dto.ProductPayload) error
	UpdateProduct(ctx context.Context, id int64, payload dto.ProductPayload) error
	DeleteProduct(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]entity.Order, error)
	SetOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	ListCartItems(ctx context.Context) ([]entity.CartItem, error)
	SetCartItemStatus(ctx context.Context, id int64, status entity.CartStatus) error

	ListCustomers(ctx context.Context) ([]entity.Customer, error)

	FetchSummary(ctx context.Context) (*entity.Summary, error)
}
