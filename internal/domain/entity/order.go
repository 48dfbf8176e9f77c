package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-admin/internal/domain"
)

// OrderStatus estado de una orden dentro del ciclo de despacho.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusRejected  OrderStatus = "rejected"
)

// Valid indica si el valor pertenece al enum del backend.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusRejected:
		return true
	}
	return false
}

// Class clase CSS para el renderer; default pendiente para valores desconocidos.
func (s OrderStatus) Class() string {
	switch s {
	case OrderStatusApproved:
		return "status-approved"
	case OrderStatusShipped:
		return "status-shipped"
	case OrderStatusDelivered:
		return "status-delivered"
	case OrderStatusRejected:
		return "status-rejected"
	default:
		return "status-pending"
	}
}

// orderTransitions transiciones permitidas por estado actual.
// delivered y rejected son terminales.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:  {OrderStatusApproved, OrderStatusRejected},
	OrderStatusApproved: {OrderStatusShipped},
	OrderStatusShipped:  {OrderStatusDelivered},
}

// ValidateOrderTransition valida current → target contra el ciclo de despacho.
// Repetir el estado actual se acepta como no-op para mantener idempotencia.
func ValidateOrderTransition(current, target OrderStatus) error {
	if current == target {
		return nil
	}
	for _, allowed := range orderTransitions[current] {
		if allowed == target {
			return nil
		}
	}
	return &domain.TransitionError{Resource: "order", From: string(current), To: string(target)}
}

// OrderItem línea de una orden (inmutable una vez creada la orden).
type OrderItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	PriceEach decimal.Decimal `json:"price_each"`
}

// Label etiqueta "Nombre xCantidad" que muestra la consola.
func (i OrderItem) Label() string {
	return fmt.Sprintf("%s x%d", i.Name, i.Quantity)
}

// Order orden tal como la expone GET /api/admin/orders. Solo status es
// mutable a través de esta consola; los ítems son inmutables.
type Order struct {
	ID          int64           `json:"id"`
	Customer    string          `json:"customer"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
