package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/usecase"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// CartHandler maneja las peticiones HTTP de revisión de carritos.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List devuelve los ítems de carrito recién sincronizados.
// GET /api/console/carts
func (h *CartHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(requestCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CartListResponse{Items: toCartViews(list)})
}

// SetStatus transiciona un ítem de carrito entre estados de revisión y
// responde con la colección sincronizada.
// PUT /api/console/cart/:id/status
func (h *CartHandler) SetStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.StatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	list, err := h.uc.SetStatus(requestCtx(c), id, entity.CartStatus(in.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CartListResponse{Items: toCartViews(list)})
}
