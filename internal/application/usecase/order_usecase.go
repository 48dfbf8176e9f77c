package usecase

import (
	"context"

	"github.com/jhoicas/Comercio-admin/internal/application/ports"
	"github.com/jhoicas/Comercio-admin/internal/application/syncer"
	"github.com/jhoicas/Comercio-admin/internal/domain"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

// OrderUseCase conduce órdenes por el ciclo de despacho:
// pending → approved → shipped → delivered, con rejected como salida
// terminal desde pending. El backend acepta cualquier valor; esta capa es
// la que hace cumplir el grafo.
type OrderUseCase struct {
	backend ports.CommerceBackend
	sync    *syncer.Controller
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(backend ports.CommerceBackend, sync *syncer.Controller) *OrderUseCase {
	return &OrderUseCase{backend: backend, sync: sync}
}

// List re-lista las órdenes (lectura fresca).
func (uc *OrderUseCase) List(ctx context.Context) ([]entity.Order, error) {
	return uc.sync.RefreshOrders(ctx)
}

// SetStatus transiciona la orden id al estado target y devuelve la colección
// sincronizada. Repetir el estado actual es un no-op aceptado (idempotente).
func (uc *OrderUseCase) SetStatus(ctx context.Context, id int64, target entity.OrderStatus) ([]entity.Order, error) {
	if !target.Valid() {
		return nil, domain.NewValidationError("estado de orden inválido")
	}

	current, ok := uc.sync.Order(id)
	if !ok {
		if _, err := uc.sync.RefreshOrders(ctx); err != nil {
			return nil, err
		}
		if current, ok = uc.sync.Order(id); !ok {
			return nil, domain.ErrNotFound
		}
	}

	if err := entity.ValidateOrderTransition(current.Status, target); err != nil {
		return nil, err
	}
	if err := uc.backend.SetOrderStatus(ctx, id, target); err != nil {
		return nil, err
	}
	return uc.sync.RefreshOrders(ctx)
}
