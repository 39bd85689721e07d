package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/sabordacasa/storefront/internal/adapter/bus"
	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/adapter/memory"
	"github.com/sabordacasa/storefront/internal/adapter/postgres"
	"github.com/sabordacasa/storefront/internal/adapter/rabbitmq"
	redisadapter "github.com/sabordacasa/storefront/internal/adapter/redis"
	"github.com/sabordacasa/storefront/internal/adapter/ws"
	"github.com/sabordacasa/storefront/internal/app/auth"
	"github.com/sabordacasa/storefront/internal/app/cart"
	"github.com/sabordacasa/storefront/internal/app/catalog"
	"github.com/sabordacasa/storefront/internal/app/checkout"
	"github.com/sabordacasa/storefront/internal/app/orders"
	"github.com/sabordacasa/storefront/internal/app/settings"
	"github.com/sabordacasa/storefront/internal/app/storestatus"
	"github.com/sabordacasa/storefront/internal/config"
	"github.com/sabordacasa/storefront/internal/interfaces"

	httpAdapter "github.com/sabordacasa/storefront/internal/adapter/http"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lgr := logger.New("storefront")

	// Persistence: Redis when configured, in-process memory otherwise.
	var store interfaces.Store
	if cfg.Redis.Addr != "" {
		redisStore := redisadapter.New(cfg.Redis.Addr)
		if err := redisStore.Ping(ctx); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore

		lgr.Info("redis_connected", "Connected to Redis", "startup", map[string]interface{}{
			"addr": cfg.Redis.Addr,
		})
	} else {
		store = memory.New()
		lgr.Info("memory_store", "Running with in-memory store", "startup", nil)
	}

	// Event bus, optionally fanned out over RabbitMQ.
	var eventBus interfaces.EventBus = bus.New(lgr)
	if cfg.RabbitMQ.URL != "" {
		mqConn, err := rabbitmq.Connect(cfg.RabbitMQ.URL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer mqConn.Close()

		notifier := rabbitmq.NewNotifier(mqConn, eventBus, lgr)
		go func() {
			if err := notifier.Consume(ctx); err != nil {
				lgr.Error("consumer_error", "Error consuming notifications", "runtime", nil, err)
			}
		}()
		eventBus = notifier

		lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", nil)
	}

	// Auth provider: identity backend when configured, fallback
	// credential otherwise.
	var provider interfaces.AuthProvider = auth.FallbackProvider{}
	if cfg.Auth.PostgresDSN != "" {
		adminUsers, err := postgres.Connect(ctx, cfg.Auth.PostgresDSN)
		if err != nil {
			log.Fatalf("Failed to connect to identity backend: %v", err)
		}
		defer adminUsers.Close()
		provider = auth.NewRemoteProvider(adminUsers)

		lgr.Info("identity_backend_connected", "Connected to identity backend", "startup", nil)
	} else {
		lgr.Info("identity_fallback", "Identity backend not configured, using fallback credential", "startup", nil)
	}

	// Services.
	settingsService := settings.NewService(store, eventBus, settings.DefaultQRGenerator{}, lgr)
	catalogService := catalog.NewService(store, lgr)
	cartService := cart.NewService(store, lgr)
	checkoutService := checkout.NewService(store, settingsService, eventBus, lgr)
	orderService := orders.NewService(store, lgr)
	authService := auth.NewService(provider, store, lgr)

	watcher := storestatus.NewWatcher(settingsService, eventBus, lgr, cfg.Store.HoursPollInterval)
	go watcher.Run(ctx)

	hub := ws.NewHub(lgr)
	go hub.Run(ctx)
	go hub.Relay(ctx, eventBus)

	// HTTP handlers.
	storefrontHandler := httpAdapter.NewStorefrontHandler(catalogService, settingsService, watcher, lgr)
	cartHandler := httpAdapter.NewCartHandler(cartService, catalogService, lgr)
	checkoutHandler := httpAdapter.NewCheckoutHandler(checkoutService, lgr)
	adminHandler := httpAdapter.NewAdminHandler(authService, catalogService, orderService, settingsService, lgr)

	mux := httpAdapter.NewRouter(storefrontHandler, cartHandler, checkoutHandler, adminHandler, authService, hub.HandleWebSocket)

	handler := httpAdapter.LoggingMiddleware(lgr)(mux)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)
	handler = cors.AllowAll().Handler(handler)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", "Storefront started", "startup", map[string]interface{}{
		"addr": cfg.HTTP.Addr,
	})

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down", "shutdown", nil)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}
