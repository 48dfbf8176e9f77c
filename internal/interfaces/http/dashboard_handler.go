package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-admin/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del dashboard de métricas.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get devuelve las métricas formateadas del dashboard.
// GET /api/console/dashboard
//
// El snapshot se recalcula en el servidor en cada carga; ante un fetch no
// autorizado no se responde nada parcial, solo la señal de redirección.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	view, err := h.uc.GetMetrics(requestCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}
