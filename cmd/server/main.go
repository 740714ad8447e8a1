package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/travel-planner/internal/api"
	"github.com/neexbeast/travel-planner/internal/cache"
	"github.com/neexbeast/travel-planner/internal/catalog"
	"github.com/neexbeast/travel-planner/internal/config"
	"github.com/neexbeast/travel-planner/internal/currency"
	"github.com/neexbeast/travel-planner/internal/recommend"
	"github.com/neexbeast/travel-planner/internal/storage"
	"github.com/neexbeast/travel-planner/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	// Destination catalog: Postgres when configured, built-in data otherwise.
	cat := catalog.Default()
	var dbPinger api.Pinger
	if cfg.DatabaseURL != "" {
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		cat, err = loadCatalog(ctx, pool, cfg.MigrationsDir, cat)
		if err != nil {
			return err
		}
		dbPinger = &pgxPoolPinger{pool: pool}
		log.Info("catalog loaded from database", "destinations", cat.Len())
	} else {
		log.Info("DATABASE_URL not set, using built-in catalog", "destinations", cat.Len())
	}

	// Connect to Redis.
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	// Wire dependencies.
	rates := currency.DefaultRates()
	lookups := catalog.DefaultLookups()

	fallback, err := catalog.ParseCategory(cfg.FallbackCategory)
	if err != nil {
		return fmt.Errorf("fallback category: %w", err)
	}
	engine := recommend.NewEngine(cat, rates, lookups, recommend.WithFallback(fallback))

	gateway := buildGateway(cfg, lookups, rates, cache.NewCache(redisClient, cfg.CacheTTL()), log)
	handlers := api.NewHandlers(engine, upstream.NewEnricher(gateway), cat, rates, gateway, log)

	router := api.NewRouter(handlers, cfg.RateLimitPerMinute, dbPinger, &redisPingerAdapter{client: redisClient}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port, "fallback_category", fallback)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// loadCatalog applies migrations, seeds an empty table with seed, and reads the catalog back.
func loadCatalog(ctx context.Context, pool *pgxpool.Pool, migrationsDir string, seed *catalog.Catalog) (*catalog.Catalog, error) {
	if err := storage.RunMigrations(ctx, pool, os.DirFS(migrationsDir)); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	cat, err := storage.NewRepository(pool).LoadCatalog(ctx, seed.All())
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

// buildGateway enables each upstream client whose credentials are configured.
func buildGateway(cfg *config.Config, lookups *catalog.Lookups, rates currency.Rates, store upstream.Store, log *slog.Logger) *upstream.Gateway {
	opts := []upstream.GatewayOption{upstream.WithStore(store)}
	enabled := map[string]bool{}

	if cfg.WeatherAPIKey != "" {
		opts = append(opts, upstream.WithWeather(upstream.NewWeatherClient(cfg.WeatherAPIKey)))
		enabled["weather"] = true
	}
	if cfg.CalendarificAPIKey != "" {
		opts = append(opts, upstream.WithHolidays(upstream.NewHolidayClient(cfg.CalendarificAPIKey)))
		enabled["holidays"] = true
	}
	if cfg.ExchangeRateAPIKey != "" {
		opts = append(opts, upstream.WithCurrency(upstream.NewCurrencyClient(cfg.ExchangeRateAPIKey)))
		enabled["currency"] = true
	}
	if cfg.AmadeusEnabled() {
		opts = append(opts, upstream.WithFlights(upstream.NewFlightClient(cfg.AmadeusClientID, cfg.AmadeusClientSecret)))
		enabled["flights"] = true
	}
	if cfg.GroqAPIKey != "" {
		opts = append(opts, upstream.WithChat(upstream.NewChatClient(cfg.GroqAPIKey)))
		enabled["chat"] = true
	}

	log.Info("upstream clients configured", "enabled", enabled)
	return upstream.NewGateway(lookups, rates, opts...)
}

// pgxPoolPinger adapts pgxpool.Pool to api.Pinger.
type pgxPoolPinger struct {
	pool *pgxpool.Pool
}

func (p *pgxPoolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// redisPingerAdapter adapts redis.Client to api.Pinger.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
