// Package main is the entry point for the realtime config sidecar. It wires
// the resolver, its cache backend, and the config gateway client using
// samber/do v2, serves the HTTP API, and shuts down gracefully on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/realtime-config/internal/adapters/http"
	"github.com/jsamuelsen11/realtime-config/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/realtime-config/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/realtime-config/internal/adapters/cache"
	"github.com/jsamuelsen11/realtime-config/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/realtime-config/internal/app"
	"github.com/jsamuelsen11/realtime-config/internal/platform/config"
	"github.com/jsamuelsen11/realtime-config/internal/platform/health"
	"github.com/jsamuelsen11/realtime-config/internal/platform/httpclient"
	"github.com/jsamuelsen11/realtime-config/internal/platform/logging"
	"github.com/jsamuelsen11/realtime-config/internal/platform/telemetry"
	"github.com/jsamuelsen11/realtime-config/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	store, closeStore, err := newCacheBackend(cfg.Cache)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("creating cache backend: %w", err)
	}
	defer closeStore()
	logger.Info("cache backend ready",
		slog.String("backend", cfg.Cache.Backend),
		slog.String("namespace", cfg.Cache.Namespace),
	)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, store)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	registry.Register(store)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// cacheBackend is a cache store that also reports its health.
type cacheBackend interface {
	ports.CacheStore
	ports.HealthChecker
}

// newCacheBackend builds the store named by cfg.Backend. The returned func
// releases it.
func newCacheBackend(cfg config.CacheConfig) (cacheBackend, func(), error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return cache.NewRedisStore(client), func() { _ = client.Close() }, nil
	case config.CacheBackendRistretto:
		store, err := cache.NewRistrettoStore(cfg.Ristretto.NumCounters, cfg.Ristretto.MaxCost)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.CacheBackendMemory:
		store := cache.NewMemoryStore(cfg.Memory.Capacity)
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, store cacheBackend) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Gateway, "config-gateway", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ConfigGateway, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewGatewayClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.CacheProvider, error) {
		return cache.NewProvider(store, cfg.Cache.Namespace), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ConfigService, error) {
		provider := do.MustInvoke[ports.CacheProvider](i)
		gateway := do.MustInvoke[ports.ConfigGateway](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewConfigService(provider, gateway, logger,
			app.WithRefreshInterval(cfg.Resolver.RefreshInterval),
			app.WithWriteConcurrency(cfg.Resolver.WriteConcurrency),
			app.WithRecordTTL(cfg.Cache.RecordTTL),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ConfigHandler, error) {
		svc := do.MustInvoke[ports.ConfigService](i)
		return handlers.NewConfigHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		configH := do.MustInvoke[*handlers.ConfigHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(configH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, cfg.Gateway, handler, logger), nil
	})
}
