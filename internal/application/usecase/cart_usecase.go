package usecase

import (
	"context"

	"github.com/jhoicas/Comercio-admin/internal/application/ports"
	"github.com/jhoicas/Comercio-admin/internal/application/syncer"
	"github.com/jhoicas/Comercio-admin/internal/domain"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// CartUseCase transiciona ítems de carrito entre estados de revisión.
// A diferencia del sistema original, el ciclo de vida sí se valida aquí:
// approved y rejected son terminales y una transición ilegal falla con
// TransitionError sin emitir la mutación.
type CartUseCase struct {
	backend ports.CommerceBackend
	sync    *syncer.Controller
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(backend ports.CommerceBackend, sync *syncer.Controller) *CartUseCase {
	return &CartUseCase{backend: backend, sync: sync}
}

// List re-lista los ítems de carrito (lectura fresca).
func (uc *CartUseCase) List(ctx context.Context) ([]entity.CartItem, error) {
	return uc.sync.RefreshCartItems(ctx)
}

// SetStatus transiciona el ítem id al estado target y devuelve la colección
// sincronizada. Repetir el estado actual es un no-op aceptado (idempotente).
func (uc *CartUseCase) SetStatus(ctx context.Context, id int64, target entity.CartStatus) ([]entity.CartItem, error) {
	if !target.Valid() {
		return nil, domain.NewValidationError("estado de carrito inválido")
	}

	current, ok := uc.sync.CartItem(id)
	if !ok {
		// Snapshot frío (primera acción tras arrancar): una lectura antes de mutar.
		if _, err := uc.sync.RefreshCartItems(ctx); err != nil {
			return nil, err
		}
		if current, ok = uc.sync.CartItem(id); !ok {
			return nil, domain.ErrNotFound
		}
	}

	if err := entity.ValidateCartTransition(current.Status, target); err != nil {
		return nil, err
	}
	if err := uc.backend.SetCartItemStatus(ctx, id, target); err != nil {
		return nil, err
	}
	return uc.sync.RefreshCartItems(ctx)
}
