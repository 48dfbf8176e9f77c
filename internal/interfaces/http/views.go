package http

import (
	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// Mapeo entidad → vista. Los derivados (total, clase de status, flag de
// stock bajo) se calculan aquí en cada respuesta; nunca viajan ni se guardan.

func toProductViews(list []entity.Product) []dto.ProductView {
	out := make([]dto.ProductView, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductView{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Price:        p.Price,
			Stock:        p.Stock,
			ReorderLevel: p.ReorderLevel,
			LowStock:     p.LowStock(),
		})
	}
	return out
}

func toCartViews(list []entity.CartItem) []dto.CartItemView {
	out := make([]dto.CartItemView, 0, len(list))
	for _, ci := range list {
		out = append(out, dto.CartItemView{
			ID:            ci.ID,
			ProductName:   ci.ProductName,
			CustomerName:  ci.CustomerName,
			CustomerEmail: ci.CustomerEmail,
			Category:      ci.Category,
			Quantity:      ci.Quantity,
			Price:         ci.Price,
			Total:         ci.Total(),
			Status:        string(ci.Status),
			StatusClass:   ci.Status.Class(),
			CreatedAt:     ci.CreatedAt,
		})
	}
	return out
}

func toOrderViews(list []entity.Order) []dto.OrderView {
	out := make([]dto.OrderView, 0, len(list))
	for _, o := range list {
		labels := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			labels = append(labels, it.Label())
		}
		out = append(out, dto.OrderView{
			ID:          o.ID,
			Customer:    o.Customer,
			ItemLabels:  labels,
			TotalAmount: o.TotalAmount,
			Status:      string(o.Status),
			StatusClass: o.Status.Class(),
			CreatedAt:   o.CreatedAt,
		})
	}
	return out
}

func toCustomerViews(list []entity.Customer) []dto.CustomerView {
	out := make([]dto.CustomerView, 0, len(list))
	for _, cu := range list {
		out = append(out, dto.CustomerView{
			ID:             cu.ID,
			Name:           cu.Name,
			Email:          cu.Email,
			CreatedAt:      cu.CreatedAt,
			TotalOrders:    cu.TotalOrders,
			TotalCartItems: cu.TotalCartItems,
			TotalSpent:     cu.TotalSpent,
		})
	}
	return out
}
