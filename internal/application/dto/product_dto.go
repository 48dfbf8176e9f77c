package dto

import "github.com/shopspring/decimal"

// ProductDraft entrada cruda para crear o editar un producto. Los campos
// llegan como texto tal como los entrega el paso de captura de la UI (inputs
// de formulario); campo vacío significa "no especificado". La validación y el
// parseo ocurren en el Catalog Manager, nunca aquí ni en la UI.
type ProductDraft struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Price        string `json:"price"`
	Stock        string `json:"stock"`
	ReorderLevel string `json:"reorder_level"`
}

// ProductPayload cuerpo ya validado y normalizado que se envía al backend
// en POST/PUT /api/admin/products.
type ProductPayload struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ReorderLevel int             `json:"reorder_level"`
}

// ProductView producto listo para el renderer, con el flag derivado de
// stock bajo (stock < reorder_level, nunca almacenado).
type ProductView struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ReorderLevel int             `json:"reorder_level"`
	LowStock     bool            `json:"low_stock"`
}

// ProductListResponse colección sincronizada de productos.
type ProductListResponse struct {
	Items []ProductView `json:"items"`
}
