package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/syncer"
)

// CustomerHandler lista los agregados de clientes (solo lectura: el backend
// es quien calcula los totales por cliente).
type CustomerHandler struct {
	sync *syncer.Controller
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(sync *syncer.Controller) *CustomerHandler {
	return &CustomerHandler{sync: sync}
}

// List devuelve los clientes recién sincronizados.
// GET /api/console/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.sync.RefreshCustomers(requestCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CustomerListResponse{Items: toCustomerViews(list)})
}
