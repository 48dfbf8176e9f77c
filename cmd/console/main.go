package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Comercio-admin/internal/application/analytics"
	"github.com/jhoicas/Comercio-admin/internal/application/syncer"
	"github.com/jhoicas/Comercio-admin/internal/application/usecase"
	infrabackend "github.com/jhoicas/Comercio-admin/internal/infrastructure/backend"
	httpRouter "github.com/jhoicas/Comercio-admin/internal/interfaces/http"
	"github.com/jhoicas/Comercio-admin/pkg/config"
	"github.com/jhoicas/Comercio-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola de operación")

	client := infrabackend.New(infrabackend.Config{
		BaseURL:       cfg.Backend.BaseURL,
		SessionCookie: cfg.Backend.SessionCookie,
		Timeout:       cfg.Backend.Timeout(),
	})

	sync := syncer.New(client, syncer.NewLogRenderer(log))
	catalogUC := usecase.NewCatalogUseCase(client, sync)
	cartUC := usecase.NewCartUseCase(client, sync)
	orderUC := usecase.NewOrderUseCase(client, sync)
	dashboardUC := analytics.NewDashboardUseCase(client)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:     catalogUC,
		CartUC:        cartUC,
		OrderUC:       orderUC,
		DashboardUC:   dashboardUC,
		Sync:          sync,
		SessionCookie: cfg.Backend.SessionCookie,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
