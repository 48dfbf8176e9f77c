package usecase_test

import (
	"context"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/ports"
	"github.com/jhoicas/Comercio-admin/internal/domain"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// fakeBackend backend de comercio en memoria. Simula la verdad del servidor:
// las mutaciones alteran sus colecciones y el siguiente list las refleja.
// Cuenta cada llamada para poder afirmar "cero viajes de red".
type fakeBackend struct {
	products  []entity.Product
	orders    []entity.Order
	carts     []entity.CartItem
	customers []entity.Customer
	summary   *entity.Summary

	failWith error // si no es nil, toda llamada falla con este error

	listProductCalls  int
	listOrderCalls    int
	listCartCalls     int
	listCustomerCalls int
	summaryCalls      int
	createCalls       int
	updateCalls       int
	deleteCalls       int
	orderStatusCalls  int
	cartStatusCalls   int

	lastPayload dto.ProductPayload
	nextID      int64
}

var _ ports.CommerceBackend = (*fakeBackend)(nil)

func (f *fakeBackend) mutationCalls() int {
	return f.createCalls + f.updateCalls + f.deleteCalls + f.orderStatusCalls + f.cartStatusCalls
}

func (f *fakeBackend) totalCalls() int {
	return f.mutationCalls() + f.listProductCalls + f.listOrderCalls +
		f.listCartCalls + f.listCustomerCalls + f.summaryCalls
}

func (f *fakeBackend) ListProducts(context.Context) ([]entity.Product, error) {
	f.listProductCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]entity.Product(nil), f.products...), nil
}

func (f *fakeBackend) CreateProduct(_ context.Context, payload dto.ProductPayload) error {
	f.createCalls++
	if f.failWith != nil {
		return f.failWith
	}
	f.lastPayload = payload
	f.nextID++
	f.products = append(f.products, entity.Product{
		ID:           f.nextID,
		Name:         payload.Name,
		Category:     payload.Category,
		Price:        payload.Price,
		Stock:        payload.Stock,
		ReorderLevel: payload.ReorderLevel,
	})
	return nil
}

func (f *fakeBackend) UpdateProduct(_ context.Context, id int64, payload dto.ProductPayload) error {
	f.updateCalls++
	if f.failWith != nil {
		return f.failWith
	}
	f.lastPayload = payload
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i] = entity.Product{
				ID:           id,
				Name:         payload.Name,
				Category:     payload.Category,
				Price:        payload.Price,
				Stock:        payload.Stock,
				ReorderLevel: payload.ReorderLevel,
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBackend) DeleteProduct(_ context.Context, id int64) error {
	f.deleteCalls++
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBackend) ListOrders(context.Context) ([]entity.Order, error) {
	f.listOrderCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]entity.Order(nil), f.orders...), nil
}

func (f *fakeBackend) SetOrderStatus(_ context.Context, id int64, status entity.OrderStatus) error {
	f.orderStatusCalls++
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBackend) ListCartItems(context.Context) ([]entity.CartItem, error) {
	f.listCartCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]entity.CartItem(nil), f.carts...), nil
}

func (f *fakeBackend) SetCartItemStatus(_ context.Context, id int64, status entity.CartStatus) error {
	f.cartStatusCalls++
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.carts {
		if f.carts[i].ID == id {
			f.carts[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeBackend) ListCustomers(context.Context) ([]entity.Customer, error) {
	f.listCustomerCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]entity.Customer(nil), f.customers...), nil
}

func (f *fakeBackend) FetchSummary(context.Context) (*entity.Summary, error) {
	f.summaryCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	cp := *f.summary
	return &cp, nil
}
