package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-admin/internal/domain"
)

// CartStatus estado de revisión de un ítem de carrito.
type CartStatus string

const (
	CartStatusPending  CartStatus = "pending"
	CartStatusApproved CartStatus = "approved"
	CartStatusRejected CartStatus = "rejected"
)

// Valid indica si el valor pertenece al enum del backend.
func (s CartStatus) Valid() bool {
	switch s {
	case CartStatusPending, CartStatusApproved, CartStatusRejected:
		return true
	}
	return false
}

// Class clase CSS para el renderer. Total: cualquier valor desconocido
// cae en el default de pendiente, nunca falla.
func (s CartStatus) Class() string {
	switch s {
	case CartStatusApproved:
		return "status-approved"
	case CartStatusRejected:
		return "status-rejected"
	default:
		return "status-pending"
	}
}

// cartTransitions transiciones permitidas por estado actual.
// approved y rejected son terminales: no se ofrece volver a pending.
var cartTransitions = map[CartStatus][]CartStatus{
	CartStatusPending: {CartStatusApproved, CartStatusRejected},
}

// ValidateCartTransition valida current → target contra el ciclo de vida.
// Repetir el estado actual se acepta como no-op para mantener idempotencia.
func ValidateCartTransition(current, target CartStatus) error {
	if current == target {
		return nil
	}
	for _, allowed := range cartTransitions[current] {
		if allowed == target {
			return nil
		}
	}
	return &domain.TransitionError{Resource: "cart_item", From: string(current), To: string(target)}
}

// CartItem ítem de carrito en revisión, tal como lo expone GET /api/admin/carts.
// Lo crea la tienda (no esta consola); aquí solo muta su status.
// CreatedAt llega como texto del backend y se muestra sin interpretar.
type CartItem struct {
	ID            int64           `json:"id"`
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Status        CartStatus      `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

// Total importe derivado quantity × price. Nunca se almacena por separado.
func (c CartItem) Total() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
