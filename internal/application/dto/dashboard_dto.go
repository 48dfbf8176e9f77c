package dto

// MetricDTO métrica nominal del dashboard ya formateada para mostrar:
// montos con 2 decimales, conteos como enteros.
type MetricDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// TopProductRowDTO fila del widget Top-5. Cuando no hay ventas entregadas el
// widget recibe una única fila placeholder en lugar de una lista vacía.
type TopProductRowDTO struct {
	Name        string `json:"name"`
	TotalSold   string `json:"total_sold"`
	Revenue     string `json:"revenue"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// DashboardViewDTO salida completa del Dashboard Aggregator. Se construye
// entera o no se construye: un fetch no autorizado no produce salida parcial.
type DashboardViewDTO struct {
	Metrics     []MetricDTO        `json:"metrics"`
	TopProducts []TopProductRowDTO `json:"top_products"`
}
