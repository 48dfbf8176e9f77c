package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/ports"
	"github.com/jhoicas/Comercio-admin/internal/application/syncer"
	"github.com/jhoicas/Comercio-admin/internal/domain"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// Valores por defecto de un borrador de producto cuando el campo llega vacío.
const (
	defaultCategory     = "General"
	defaultReorderLevel = 5
)

// CatalogUseCase gestiona el catálogo: alta, edición y baja de productos.
// Toda validación ocurre antes de tocar la red; un borrador inválido no
// genera ninguna petición. Tras cada mutación exitosa se re-lista el catálogo
// completo vía el sync controller.
type CatalogUseCase struct {
	backend ports.CommerceBackend
	sync    *syncer.Controller
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(backend ports.CommerceBackend, sync *syncer.Controller) *CatalogUseCase {
	return &CatalogUseCase{backend: backend, sync: sync}
}

// List re-lista el catálogo (lectura fresca, sin mutación).
func (uc *CatalogUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.sync.RefreshProducts(ctx)
}

// Add valida el borrador, crea el producto y devuelve el catálogo sincronizado.
func (uc *CatalogUseCase) Add(ctx context.Context, draft dto.ProductDraft) ([]entity.Product, error) {
	payload, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}
	if err := uc.backend.CreateProduct(ctx, payload); err != nil {
		return nil, err
	}
	return uc.sync.RefreshProducts(ctx)
}

// Edit valida el borrador (mismas reglas que Add), actualiza el producto y
// devuelve el catálogo sincronizado.
func (uc *CatalogUseCase) Edit(ctx context.Context, id int64, draft dto.ProductDraft) ([]entity.Product, error) {
	payload, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}
	if err := uc.backend.UpdateProduct(ctx, id, payload); err != nil {
		return nil, err
	}
	return uc.sync.RefreshProducts(ctx)
}

// Delete elimina un producto de forma irreversible. confirmed es la compuerta
// explícita que aporta el llamador: sin confirmación no se emite la petición.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64, confirmed bool) ([]entity.Product, error) {
	if !confirmed {
		return nil, domain.ErrConfirmRequired
	}
	if err := uc.backend.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}
	return uc.sync.RefreshProducts(ctx)
}

// validateDraft aplica las reglas del catálogo sobre el borrador crudo:
//   - name: obligatorio (tras recortar espacios)
//   - price: decimal positivo obligatorio
//   - stock: entero ≥ 0, default 0
//   - reorder_level: entero ≥ 0, default 5
//   - category: default "General"
func validateDraft(draft dto.ProductDraft) (dto.ProductPayload, error) {
	var payload dto.ProductPayload

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return payload, domain.NewValidationError("nombre requerido")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(draft.Price))
	if err != nil || price.LessThanOrEqual(decimal.Zero) {
		return payload, domain.NewValidationError("precio inválido")
	}

	stock := 0
	if s := strings.TrimSpace(draft.Stock); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			return payload, domain.NewValidationError("stock inválido")
		}
	}

	reorder := defaultReorderLevel
	if s := strings.TrimSpace(draft.ReorderLevel); s != "" {
		reorder, err = strconv.Atoi(s)
		if err != nil || reorder < 0 {
			return payload, domain.NewValidationError("nivel de reposición inválido")
		}
	}

	category := strings.TrimSpace(draft.Category)
	if category == "" {
		category = defaultCategory
	}

	payload = dto.ProductPayload{
		Name:         name,
		Category:     category,
		Price:        price,
		Stock:        stock,
		ReorderLevel: reorder,
	}
	return payload, nil
}
