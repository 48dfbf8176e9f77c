// Package analytics contiene el Dashboard Aggregator: una remodelación pura
// del snapshot de /api/admin/summary hacia las métricas nominales que muestra
// la presentación.
package analytics

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/ports"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// topProductsPlaceholder fila que recibe el widget cuando aún no hay ventas
// entregadas; la secuencia vacía nunca llega al renderer.
const topProductsPlaceholder = "Sin ventas entregadas todavía"

// DashboardUseCase un solo viaje a FetchSummary y luego remodelado puro:
// montos con 2 decimales, conteos como enteros. Un fetch no autorizado se
// propaga sin producir salida parcial.
type DashboardUseCase struct {
	backend ports.CommerceBackend
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(backend ports.CommerceBackend) *DashboardUseCase {
	return &DashboardUseCase{backend: backend}
}

// GetMetrics obtiene el snapshot del servidor y lo convierte en la vista
// completa del dashboard.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardViewDTO, error) {
	summary, err := uc.backend.FetchSummary(ctx)
	if err != nil {
		return nil, err
	}
	return BuildView(summary), nil
}

// BuildView remodelado puro del snapshot; sin red, sin estado.
func BuildView(s *entity.Summary) *dto.DashboardViewDTO {
	metrics := []dto.MetricDTO{
		count("totalProducts", "Productos", s.TotalProducts),
		count("totalCustomers", "Clientes", s.TotalCustomers),
		count("totalOrders", "Órdenes", s.TotalOrders),
		money("totalRevenue", "Ingresos totales", s.TotalRevenue),
		money("deliveredRevenue", "Ingresos entregados", s.DeliveredRevenue),
		count("pendingOrders", "Órdenes pendientes", s.PendingOrders),
		count("approvedOrders", "Órdenes aprobadas", s.ApprovedOrders),
		count("deliveredOrders", "Órdenes entregadas", s.DeliveredOrders),
		count("totalCartItems", "Ítems en carritos", s.TotalCartItems),
		count("pendingCartItems", "Carritos pendientes", s.PendingCartItems),
		count("approvedCartItems", "Carritos aprobados", s.ApprovedCartItems),
		money("cartTotalValue", "Valor en carritos", s.CartTotalValue),
		count("ordersToday", "Órdenes de hoy", s.OrdersToday),
		money("revenueToday", "Ingresos de hoy", s.RevenueToday),
		count("lowStock", "Productos con stock bajo", s.LowStock),
	}

	rows := make([]dto.TopProductRowDTO, 0, len(s.TopProducts))
	for _, tp := range s.TopProducts {
		rows = append(rows, dto.TopProductRowDTO{
			Name:      tp.Name,
			TotalSold: strconv.Itoa(tp.TotalSold),
			Revenue:   formatMoney(tp.Revenue),
		})
	}
	if len(rows) == 0 {
		rows = append(rows, dto.TopProductRowDTO{Name: topProductsPlaceholder, Placeholder: true})
	}

	return &dto.DashboardViewDTO{Metrics: metrics, TopProducts: rows}
}

func count(key, label string, v int) dto.MetricDTO {
	return dto.MetricDTO{Key: key, Label: label, Value: strconv.Itoa(v)}
}

func money(key, label string, v decimal.Decimal) dto.MetricDTO {
	return dto.MetricDTO{Key: key, Label: label, Value: formatMoney(v)}
}

func formatMoney(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}
