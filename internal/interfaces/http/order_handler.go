package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/usecase"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP del ciclo de vida de órdenes.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List devuelve las órdenes recién sincronizadas.
// GET /api/console/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(requestCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OrderListResponse{Items: toOrderViews(list)})
}

// SetStatus transiciona una orden dentro del ciclo de despacho y responde
// con la colección sincronizada.
// PUT /api/console/orders/:id/status
func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.StatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	list, err := h.uc.SetStatus(requestCtx(c), id, entity.OrderStatus(in.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OrderListResponse{Items: toOrderViews(list)})
}
