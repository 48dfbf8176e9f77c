package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-admin/internal/application/dto"
	"github.com/jhoicas/Comercio-admin/internal/application/syncer"
	"github.com/jhoicas/Comercio-admin/internal/application/usecase"
	"github.com/jhoicas/Comercio-admin/internal/domain"
)

func newCatalog(fake *fakeBackend) *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(fake, syncer.New(fake, nil))
}

func widgetDraft() dto.ProductDraft {
	return dto.ProductDraft{
		Name:         "Widget",
		Price:        "9.99",
		Stock:        "10",
		ReorderLevel: "5",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogAdd_ProductoApareceExactamenteUnaVez(t *testing.T) {
	fake := &fakeBackend{}
	uc := newCatalog(fake)

	list, err := uc.Add(context.Background(), widgetDraft())
	require.NoError(t, err)

	matches := 0
	for _, p := range list {
		if p.Name == "Widget" && p.Price.Equal(decimal.RequireFromString("9.99")) &&
			p.Stock == 10 && p.ReorderLevel == 5 {
			matches++
		}
	}
	assert.Equal(t, 1, matches, "el borrador debe aparecer exactamente una vez en el re-listado")
	assert.Equal(t, 1, fake.createCalls)
	assert.Equal(t, 1, fake.listProductCalls, "una mutación dispara exactamente un re-listado")
}

func TestCatalogAdd_DefaultsDeCampoVacio(t *testing.T) {
	fake := &fakeBackend{}
	uc := newCatalog(fake)

	_, err := uc.Add(context.Background(), dto.ProductDraft{Name: "Básico", Price: "1.50"})
	require.NoError(t, err)

	assert.Equal(t, "General", fake.lastPayload.Category, "categoría default")
	assert.Equal(t, 0, fake.lastPayload.Stock, "stock default 0")
	assert.Equal(t, 5, fake.lastPayload.ReorderLevel, "umbral de reposición default 5")
}

func TestCatalogAdd_ValidacionSinViajesDeRed(t *testing.T) {
	cases := []struct {
		name  string
		draft dto.ProductDraft
	}{
		{"nombre vacío", dto.ProductDraft{Name: "   ", Price: "9.99"}},
		{"precio vacío", dto.ProductDraft{Name: "Widget"}},
		{"precio cero", dto.ProductDraft{Name: "Widget", Price: "0"}},
		{"precio negativo", dto.ProductDraft{Name: "Widget", Price: "-5"}},
		{"precio no numérico", dto.ProductDraft{Name: "Widget", Price: "gratis"}},
		{"stock negativo", dto.ProductDraft{Name: "Widget", Price: "9.99", Stock: "-1"}},
		{"stock no numérico", dto.ProductDraft{Name: "Widget", Price: "9.99", Stock: "muchos"}},
		{"umbral negativo", dto.ProductDraft{Name: "Widget", Price: "9.99", ReorderLevel: "-3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeBackend{}
			uc := newCatalog(fake)

			_, err := uc.Add(context.Background(), tc.draft)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Zero(t, fake.totalCalls(), "un borrador inválido no genera ninguna petición")

			_, err = uc.Edit(context.Background(), 1, tc.draft)
			require.ErrorAs(t, err, &vErr, "Edit aplica las mismas reglas que Add")
			assert.Zero(t, fake.totalCalls())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y escenario de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogEdit_EscenarioStockBajo(t *testing.T) {
	fake := &fakeBackend{}
	uc := newCatalog(fake)

	list, err := uc.Add(context.Background(), widgetDraft())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].LowStock(), "stock 10 ≥ umbral 5: sin flag")

	edited := widgetDraft()
	edited.Stock = "3"
	list, err = uc.Edit(context.Background(), list[0].ID, edited)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].LowStock(), "tras bajar stock a 3 el flag debe encenderse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Baja con compuerta de confirmación
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogDelete_SinConfirmacionNoHayPeticion(t *testing.T) {
	fake := &fakeBackend{}
	uc := newCatalog(fake)

	list, err := uc.Add(context.Background(), widgetDraft())
	require.NoError(t, err)
	id := list[0].ID
	fake.listProductCalls = 0

	_, err = uc.Delete(context.Background(), id, false)
	assert.ErrorIs(t, err, domain.ErrConfirmRequired)
	assert.Zero(t, fake.deleteCalls, "sin confirmación el Resource Client no se invoca")
	assert.Zero(t, fake.listProductCalls)

	list, err = uc.Delete(context.Background(), id, true)
	require.NoError(t, err)
	assert.Empty(t, list, "confirmada, la baja es irreversible y el re-listado ya no trae el producto")
	assert.Equal(t, 1, fake.deleteCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos del backend: el estado previo queda intacto
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogAdd_ErrorDelBackendSePropaga(t *testing.T) {
	fake := &fakeBackend{failWith: domain.ErrUnauthorized}
	uc := newCatalog(fake)

	_, err := uc.Add(context.Background(), widgetDraft())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, fake.createCalls)
	assert.Zero(t, fake.listProductCalls, "sin mutación confirmada no hay re-listado")
}
