package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/usecase"
)

// CatalogHandler maneja las peticiones HTTP del catálogo de productos.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List devuelve el catálogo recién sincronizado.
// GET /api/console/products
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(requestCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductListResponse{Items: toProductViews(list)})
}

// Create valida el borrador y crea el producto. La respuesta trae el catálogo
// ya sincronizado para que la UI re-renderice desde estado confirmado.
// POST /api/console/products
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var draft dto.ProductDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	list, err := h.uc.Add(requestCtx(c), draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductListResponse{Items: toProductViews(list)})
}

// Update edita un producto existente con las mismas reglas de validación.
// PUT /api/console/products/:id
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var draft dto.ProductDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	list, err := h.uc.Edit(requestCtx(c), id, draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductListResponse{Items: toProductViews(list)})
}

// Delete elimina un producto. Exige ?confirm=true: sin la compuerta explícita
// no se emite petición alguna al backend.
// DELETE /api/console/products/:id?confirm=true
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	confirmed := c.QueryBool("confirm", false)
	list, err := h.uc.Delete(requestCtx(c), id, confirmed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductListResponse{Items: toProductViews(list)})
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
