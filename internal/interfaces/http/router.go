package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-admin/internal/application/analytics"
	"github.com/jhoicas/Comercio-admin/internal/application/syncer"
	"github.com/jhoicas/Comercio-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC     *usecase.CatalogUseCase
	CartUC        *usecase.CartUseCase
	OrderUC       *usecase.OrderUseCase
	DashboardUC   *analytics.DashboardUseCase
	Sync          *syncer.Controller
	SessionCookie string
}

// Router registra las rutas de la consola. Todo el surface va detrás del
// middleware de sesión; la cookie se reenvía opaca al backend.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/console", SessionMiddleware(deps.SessionCookie))

	products := api.Group("/products")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products.Get("/", catalogHandler.List)
	products.Post("/", catalogHandler.Create)
	products.Put("/:id", catalogHandler.Update)
	products.Delete("/:id", catalogHandler.Delete)

	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Put("/:id/status", orderHandler.SetStatus)

	carts := api.Group("/carts")
	cartHandler := NewCartHandler(deps.CartUC)
	carts.Get("/", cartHandler.List)
	// La mutación usa "cart" en singular, espejo de la ruta del backend.
	api.Put("/cart/:id/status", cartHandler.SetStatus)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.Sync)
	customers.Get("/", customerHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Get)
}
