// Package syncer mantiene el snapshot local de cada colección y lo renueva
// tras cada mutación. Es el único mecanismo de consistencia de la consola:
// lo mostrado siempre es estado confirmado por el servidor en el último
// viaje; no se hace parcheo incremental ni se confía en mutaciones locales.
package syncer

import (
	"context"
	"sync"

	"github.com/jhoicas/Comercio-admin/internal/application/ports"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// Renderer colaborador externo de presentación. El controlador le entrega
// cada colección recién sincronizada; cómo se pinte no es asunto de este core.
type Renderer interface {
	RenderProducts([]entity.Product)
	RenderOrders([]entity.Order)
	RenderCartItems([]entity.CartItem)
	RenderCustomers([]entity.Customer)
}

// Controller dueño único del snapshot (reemplaza las colecciones globales
// del sistema original). Los consumidores reciben copias; nadie muta el
// snapshot salvo un refresh completo.
type Controller struct {
	backend  ports.CommerceBackend
	renderer Renderer

	mu        sync.RWMutex
	products  []entity.Product
	orders    []entity.Order
	carts     []entity.CartItem
	customers []entity.Customer
}

// New construye el controlador. renderer puede ser nil (sin notificación).
func New(backend ports.CommerceBackend, renderer Renderer) *Controller {
	return &Controller{backend: backend, renderer: renderer}
}

// RefreshProducts descarta el snapshot de productos y lo reemplaza por la
// respuesta actual del servidor. Ante error el snapshot previo queda intacto.
func (c *Controller) RefreshProducts(ctx context.Context) ([]entity.Product, error) {
	list, err := c.backend.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.products = list
	c.mu.Unlock()
	if c.renderer != nil {
		c.renderer.RenderProducts(copySlice(list))
	}
	return copySlice(list), nil
}

// RefreshOrders ídem para órdenes.
func (c *Controller) RefreshOrders(ctx context.Context) ([]entity.Order, error) {
	list, err := c.backend.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.orders = list
	c.mu.Unlock()
	if c.renderer != nil {
		c.renderer.RenderOrders(copyOrders(list))
	}
	return copyOrders(list), nil
}

// RefreshCartItems ídem para ítems de carrito.
func (c *Controller) RefreshCartItems(ctx context.Context) ([]entity.CartItem, error) {
	list, err := c.backend.ListCartItems(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.carts = list
	c.mu.Unlock()
	if c.renderer != nil {
		c.renderer.RenderCartItems(copySlice(list))
	}
	return copySlice(list), nil
}

// RefreshCustomers ídem para clientes (colección solo lectura).
func (c *Controller) RefreshCustomers(ctx context.Context) ([]entity.Customer, error) {
	list, err := c.backend.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.customers = list
	c.mu.Unlock()
	if c.renderer != nil {
		c.renderer.RenderCustomers(copySlice(list))
	}
	return copySlice(list), nil
}

// Products copia del snapshot actual de productos.
func (c *Controller) Products() []entity.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySlice(c.products)
}

// Orders copia del snapshot actual de órdenes.
func (c *Controller) Orders() []entity.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyOrders(c.orders)
}

// CartItems copia del snapshot actual de ítems de carrito.
func (c *Controller) CartItems() []entity.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copySlice(c.carts)
}

// Order busca una orden por id en el snapshot actual.
func (c *Controller) Order(id int64) (entity.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, o := range c.orders {
		if o.ID == id {
			o.Items = append([]entity.OrderItem(nil), o.Items...)
			return o, true
		}
	}
	return entity.Order{}, false
}

// CartItem busca un ítem de carrito por id en el snapshot actual.
func (c *Controller) CartItem(id int64) (entity.CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ci := range c.carts {
		if ci.ID == id {
			return ci, true
		}
	}
	return entity.CartItem{}, false
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// copyOrders copia también los Items de cada orden: una copia superficial
// compartiría el backing array y un consumidor podría corromper el snapshot.
func copyOrders(in []entity.Order) []entity.Order {
	out := copySlice(in)
	for i := range out {
		out[i].Items = append([]entity.OrderItem(nil), out[i].Items...)
	}
	return out
}
