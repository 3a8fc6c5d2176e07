package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/routes"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/auth"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/buyers"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/customers"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/orders"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/pricing"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/quotes"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/reference"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/internal/users"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/auth/session"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/config"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/kurasi"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/logger"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/metrics"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/migrate"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/outbox"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/redis"
)

const shutdownGrace = 30 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	customerService, err := customers.NewService(customers.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create customer service", err)
		os.Exit(1)
	}

	countries := reference.DefaultTable()

	buyerRepo := buyers.NewRepository(dbClient.DB())
	buyerService, err := buyers.NewService(buyerRepo, countries)
	if err != nil {
		logg.Error(context.Background(), "failed to create buyer service", err)
		os.Exit(1)
	}

	kurasiClient, err := kurasi.NewClient(
		cfg.Kurasi.BaseURL,
		cfg.Kurasi.APIToken,
		kurasi.WithTimeouts(cfg.Kurasi.Timeout, cfg.Kurasi.BulkListTimeout),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create carrier client", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.ServiceParams{
		Repo:      orders.NewRepository(dbClient.DB()),
		Tx:        dbClient,
		Outbox:    outbox.NewService(outbox.NewRepository(dbClient.DB()), logg),
		Buyers:    buyerRepo,
		Carrier:   kurasiClient,
		Countries: countries,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	quoteService, err := quotes.NewService(
		kurasiClient,
		pricing.NewCalculator(pricing.DefaultFeeTable()),
		countries,
		cfg.Kurasi.OriginCountry,
		cfg.Kurasi.Currency,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Redis:       redisClient,
			Sessions:    sessionManager,
			Registry:    registry,
			HTTPMetrics: httpMetrics,
			Countries:   countries,
			Carrier:     kurasiClient,
			Auth:        authService,
			Customers:   customerService,
			Buyers:      buyerService,
			Orders:      orderService,
			Quotes:      quoteService,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "error during server shutdown", err)
		}
		logg.Info(ctx, "api server shut down gracefully")
	}
}
