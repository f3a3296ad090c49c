package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mefdet1/Assignment-5/internal/config"
	"github.com/mefdet1/Assignment-5/internal/database"
	"github.com/mefdet1/Assignment-5/internal/handlers"
	"github.com/mefdet1/Assignment-5/internal/models"
	"github.com/mefdet1/Assignment-5/internal/repository"
	"github.com/mefdet1/Assignment-5/internal/seed"
	"github.com/mefdet1/Assignment-5/internal/service"
	"github.com/mefdet1/Assignment-5/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting sandwich shop api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"db_driver", cfg.Database.Driver,
	)

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Error("failed to migrate schema", "error", err)
			os.Exit(1)
		}
	}

	// Initialize services
	orderService := service.NewOrderService(repository.NewStore[models.Order](db, "order", "OrderDetails"))
	sandwichService := service.NewSandwichService(repository.NewStore[models.Sandwich](db, "sandwich"))
	resourceService := service.NewResourceService(repository.NewStore[models.Resource](db, "resource"))
	recipeService := service.NewRecipeService(repository.NewStore[models.Recipe](db, "recipe"))
	orderDetailService := service.NewOrderDetailService(repository.NewStore[models.OrderDetail](db, "order_detail"))

	// Seed the catalog on first start
	if len(cfg.Seed.Files) > 0 {
		log.Info("loading seed data...", "sources", len(cfg.Seed.Files))
		catalogs, err := seed.NewLoader(log).Load(ctx, cfg.Seed.Files)
		if err != nil {
			log.Error("failed to load seed data", "error", err)
			os.Exit(1)
		}
		seeder := seed.NewSeeder(sandwichService, resourceService, recipeService, log)
		if _, err := seeder.Apply(ctx, catalogs); err != nil {
			log.Error("failed to apply seed data", "error", err)
			os.Exit(1)
		}
	}

	// Initialize handlers
	h := handlers.Handlers{
		Orders:       handlers.NewOrderHandler(orderService, log),
		Sandwiches:   handlers.NewSandwichHandler(sandwichService, log),
		Resources:    handlers.NewResourceHandler(resourceService, log),
		Recipes:      handlers.NewRecipeHandler(recipeService, log),
		OrderDetails: handlers.NewOrderDetailHandler(orderDetailService, log),
		Health: handlers.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}, log),
	}

	r := handlers.NewRouter(h, handlers.RouterOptions{
		Logger:         log,
		CORS:           cfg.CORS,
		Auth:           cfg.Auth,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
		MetricsEnabled: cfg.Metrics.Enabled,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("server failed to start", "error", err)
		return
	}

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}

	log.Info("server stopped gracefully")
}
