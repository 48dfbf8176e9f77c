package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo tal como lo expone GET /api/admin/products.
// ReorderLevel es el umbral de reposición; el flag de stock bajo se deriva,
// nunca se persiste.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ReorderLevel int             `json:"reorder_level"`
}

// LowStock indica si el producto está por debajo de su umbral de reposición.
func (p Product) LowStock() bool {
	return p.Stock < p.ReorderLevel
}
