package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-admin/internal/application/syncer"
	"github.com/jhoicas/Comercio-admin/internal/application/usecase"
	"github.com/jhoicas/Comercio-admin/internal/domain"
	"github.com/jhoicas/Comercio-admin/internal/domain/entity"
)

func pendingOrder(id int64) entity.Order {
	return entity.Order{
		ID:          id,
		Customer:    "hum5@gmail.com",
		Items:       []entity.OrderItem{{Name: "iPhone 15 Pro", Quantity: 1, PriceEach: decimal.RequireFromString("90000")}},
		TotalAmount: decimal.RequireFromString("90000"),
		Status:      entity.OrderStatusPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderSetStatus_TransicionValidaYReListado(t *testing.T) {
	fake := &fakeBackend{orders: []entity.Order{pendingOrder(42)}}
	uc := usecase.NewOrderUseCase(fake, syncer.New(fake, nil))

	list, err := uc.SetStatus(context.Background(), 42, entity.OrderStatusRejected)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.OrderStatusRejected, list[0].Status,
		"el re-listado refleja el estado confirmado por el servidor")
	assert.Equal(t, 1, fake.orderStatusCalls)
}

func TestOrderSetStatus_TransicionIlegalSinMutacion(t *testing.T) {
	fake := &fakeBackend{orders: []entity.Order{pendingOrder(42)}}
	sync := syncer.New(fake, nil)
	uc := usecase.NewOrderUseCase(fake, sync)

	_, err := uc.SetStatus(context.Background(), 42, entity.OrderStatusRejected)
	require.NoError(t, err)

	// rejected es terminal: volver a approved viola el ciclo de despacho.
	_, err = uc.SetStatus(context.Background(), 42, entity.OrderStatusApproved)
	var trErr *domain.TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, "rejected", trErr.From)
	assert.Equal(t, "approved", trErr.To)
	assert.Equal(t, 1, fake.orderStatusCalls, "la transición ilegal no emite mutación alguna")
}

func TestOrderSetStatus_IdempotenteConMismoEstado(t *testing.T) {
	fake := &fakeBackend{orders: []entity.Order{pendingOrder(42)}}
	uc := usecase.NewOrderUseCase(fake, syncer.New(fake, nil))

	first, err := uc.SetStatus(context.Background(), 42, entity.OrderStatusApproved)
	require.NoError(t, err)
	second, err := uc.SetStatus(context.Background(), 42, entity.OrderStatusApproved)
	require.NoError(t, err, "repetir el mismo estado debe aceptarse igual")

	assert.Equal(t, first[0].Status, second[0].Status)
	assert.Equal(t, 2, fake.orderStatusCalls)
}

func TestOrderSetStatus_CicloCompletoHastaEntrega(t *testing.T) {
	fake := &fakeBackend{orders: []entity.Order{pendingOrder(7)}}
	uc := usecase.NewOrderUseCase(fake, syncer.New(fake, nil))
	ctx := context.Background()

	for _, s := range []entity.OrderStatus{
		entity.OrderStatusApproved, entity.OrderStatusShipped, entity.OrderStatusDelivered,
	} {
		list, err := uc.SetStatus(ctx, 7, s)
		require.NoError(t, err, "paso %s del ciclo", s)
		assert.Equal(t, s, list[0].Status)
	}

	// delivered es terminal.
	_, err := uc.SetStatus(ctx, 7, entity.OrderStatusShipped)
	var trErr *domain.TransitionError
	assert.ErrorAs(t, err, &trErr)
}

func TestOrderSetStatus_EstadoFueraDelEnum(t *testing.T) {
	fake := &fakeBackend{orders: []entity.Order{pendingOrder(1)}}
	uc := usecase.NewOrderUseCase(fake, syncer.New(fake, nil))

	_, err := uc.SetStatus(context.Background(), 1, entity.OrderStatus("archivada"))
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, fake.totalCalls())
}

func TestOrderSetStatus_OrdenInexistente(t *testing.T) {
	fake := &fakeBackend{}
	uc := usecase.NewOrderUseCase(fake, syncer.New(fake, nil))

	_, err := uc.SetStatus(context.Background(), 999, entity.OrderStatusApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, fake.orderStatusCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carritos
// ──────────────────────────────────────────────────────────────────────────────

func pendingCartItem(id int64) entity.CartItem {
	return entity.CartItem{
		ID:           id,
		ProductName:  "Fresh Apples",
		CustomerName: "Ana",
		Quantity:     2,
		Price:        decimal.RequireFromString("150"),
		Status:       entity.CartStatusPending,
	}
}

func TestCartSetStatus_AprobacionYTerminales(t *testing.T) {
	fake := &fakeBackend{carts: []entity.CartItem{pendingCartItem(7)}}
	uc := usecase.NewCartUseCase(fake, syncer.New(fake, nil))
	ctx := context.Background()

	list, err := uc.SetStatus(ctx, 7, entity.CartStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.CartStatusApproved, list[0].Status)

	// approved es terminal: no se ofrece volver a pending.
	_, err = uc.SetStatus(ctx, 7, entity.CartStatusPending)
	var trErr *domain.TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, 1, fake.cartStatusCalls)
}

func TestCartSetStatus_SnapshotFrioSeRefrescaAntesDeValidar(t *testing.T) {
	// Primera acción tras arrancar: el snapshot está vacío y el ítem se
	// resuelve con una lectura previa, nunca mutando a ciegas.
	fake := &fakeBackend{carts: []entity.CartItem{pendingCartItem(3)}}
	uc := usecase.NewCartUseCase(fake, syncer.New(fake, nil))

	list, err := uc.SetStatus(context.Background(), 3, entity.CartStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.CartStatusRejected, list[0].Status)
	assert.Equal(t, 2, fake.listCartCalls, "una lectura para resolver el ítem y el re-listado posterior")
}

func TestCartSetStatus_EstadoFueraDelEnum(t *testing.T) {
	fake := &fakeBackend{carts: []entity.CartItem{pendingCartItem(1)}}
	uc := usecase.NewCartUseCase(fake, syncer.New(fake, nil))

	_, err := uc.SetStatus(context.Background(), 1, entity.CartStatus("en-duda"))
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, fake.totalCalls())
}
