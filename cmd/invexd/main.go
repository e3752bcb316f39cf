// Command invexd backend de desarrollo que sirve la API REST consumida por invex.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/invex/internal/application/backend"
	"github.com/jhoicas/invex/internal/domain/repository"
	"github.com/jhoicas/invex/internal/infrastructure/memory"
	"github.com/jhoicas/invex/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/invex/internal/interfaces/http"
	"github.com/jhoicas/invex/pkg/config"
	"github.com/jhoicas/invex/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando backend")

	ctx := context.Background()

	var store repository.InventoryStore
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración")
		}
		store = postgres.NewInventoryStore(pool)
		log.Info().Msg("almacén: PostgreSQL")
	} else {
		store = memory.NewInventoryStore()
		log.Info().Msg("almacén: memoria")
	}

	svc := backend.NewInventoryService(store, log.Component("backend"))

	if cfg.DB.SeedFile != "" {
		if err := applySeed(ctx, svc, cfg.DB.SeedFile); err != nil {
			log.Fatal().Err(err).Str("file", cfg.DB.SeedFile).Msg("seed")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Inventory: svc,
		Log:       log,
		AppName:   cfg.App.Name,
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

	log.Info().Msg("backend detenido")
}

func applySeed(ctx context.Context, svc *backend.InventoryService, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	seed, err := backend.DecodeSeed(f)
	if err != nil {
		return err
	}
	return svc.ApplySeed(ctx, seed)
}
