package entity

import "github.com/shopspring/decimal"

// TopProduct fila del Top-5 de productos por unidades vendidas (entregadas).
type TopProduct struct {
	Name      string          `json:"name"`
	TotalSold int             `json:"total_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// Summary snapshot efímero de GET /api/admin/summary. No se persiste en la
// consola; se recalcula en el servidor en cada carga del dashboard.
type Summary struct {
	TotalProducts     int             `json:"totalProducts"`
	TotalCustomers    int             `json:"totalCustomers"`
	TotalOrders       int             `json:"totalOrders"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	DeliveredRevenue  decimal.Decimal `json:"deliveredRevenue"`
	PendingOrders     int             `json:"pendingOrders"`
	ApprovedOrders    int             `json:"approvedOrders"`
	DeliveredOrders   int             `json:"deliveredOrders"`
	TotalCartItems    int             `json:"totalCartItems"`
	PendingCartItems  int             `json:"pendingCartItems"`
	ApprovedCartItems int             `json:"approvedCartItems"`
	CartTotalValue    decimal.Decimal `json:"cartTotalValue"`
	OrdersToday       int             `json:"ordersToday"`
	RevenueToday      decimal.Decimal `json:"revenueToday"`
	LowStock          int             `json:"lowStock"`
	TopProducts       []TopProduct    `json:"topProducts"`
}
