package dto

import "github.com/shopspring/decimal"

// StatusUpdateRequest cuerpo de PUT .../status, idéntico al contrato del backend.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// CartItemView ítem de carrito listo para el renderer: Total y StatusClass
// son derivados, nunca persistidos.
type CartItemView struct {
	ID            int64           `json:"id"`
	ProductName   string          `json:"product_name"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	StatusClass   string          `json:"status_class"`
	CreatedAt     string          `json:"created_at"`
}

// CartListResponse colección sincronizada de ítems de carrito.
type CartListResponse struct {
	Items []CartItemView `json:"items"`
}

// OrderView orden lista para el renderer. ItemLabels son las etiquetas
// "Nombre xCantidad" que la consola muestra unidas por comas.
type OrderView struct {
	ID          int64           `json:"id"`
	Customer    string          `json:"customer"`
	ItemLabels  []string        `json:"item_labels"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	StatusClass string          `json:"status_class"`
	CreatedAt   string          `json:"created_at"`
}

// OrderListResponse colección sincronizada de órdenes.
type OrderListResponse struct {
	Items []OrderView `json:"items"`
}

// CustomerView agregado de cliente tal como se muestra (solo lectura).
type CustomerView struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	CreatedAt      string          `json:"created_at"`
	TotalOrders    int             `json:"total_orders"`
	TotalCartItems int             `json:"total_cart_items"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
}

// CustomerListResponse colección sincronizada de clientes.
type CustomerListResponse struct {
	Items []CustomerView `json:"items"`
}
