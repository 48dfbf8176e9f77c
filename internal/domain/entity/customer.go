package entity

import "github.com/shopspring/decimal"

// Customer agregado de cliente calculado por el backend (solo lectura,
// GET /api/admin/customers). La consola únicamente lo muestra.
type Customer struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	CreatedAt      string          `json:"created_at"`
	TotalOrders    int             `json:"total_orders"`
	TotalCartItems int             `json:"total_cart_items"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
}
