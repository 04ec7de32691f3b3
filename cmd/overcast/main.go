package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpapi "github.com/i474232898/overcast/internal/api/http"
	"github.com/i474232898/overcast/internal/config"
	"github.com/i474232898/overcast/internal/quip"
	"github.com/i474232898/overcast/internal/scheduler"
	"github.com/i474232898/overcast/internal/store"
	"github.com/i474232898/overcast/internal/weather"
	"github.com/i474232898/overcast/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.WeatherAPIKey == "" {
		log.Printf("WARN: WEATHERAPI_KEY not set; /api requests will fail until it is configured")
	}

	// Quips are loaded once and shared read-only.
	notes := quip.LoadNotes(cfg.NotesDir)
	log.Printf("INFO: loaded %d quips from %s", notes.Count(), cfg.NotesDir)

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	provider := providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey, cfg.ForecastDays)

	cache, closeCache := newStore(cfg)
	defer closeCache()

	service := weather.NewService(cache, provider, quip.NewSelector(notes), cfg.CacheTTL)

	// Scheduler that keeps configured locations warm.
	sched := scheduler.New(cfg.WarmLocations, cfg.WarmInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "overcast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New())

	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Printf("INFO: overcast API listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

func newStore(cfg *config.AppConfig) (weather.Store, func()) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		return store.NewMemoryStore(cfg.CacheTTL), func() {}
	}

	rs := store.NewRedisStore(redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	}), cfg.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rs.Ping(ctx); err != nil {
		log.Fatalf("could not connect to redis at %s: %v", cfg.RedisAddr, err)
	}
	log.Printf("INFO: caching forecasts in redis at %s", cfg.RedisAddr)

	return rs, func() {
		if err := rs.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}
}
